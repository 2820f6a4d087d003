package create_blocked_date

import (
	"time"

	"github.com/emkoumo/bookingapp/pkg/types"
)

// Request модель запроса на блокировку дат.
// Диапазон закрытый: StartDate и EndDate входят в блокировку, одна дата
// (StartDate == EndDate) допустима.
type Request struct {
	PropertyIDs []int64
	StartDate   types.Date
	EndDate     types.Date
	Reason      *string
}

// Response модель ответа: одна запись блокировки на каждый объект
type Response struct {
	BlockedDates []BlockedDateData
}

// BlockedDateData данные созданной блокировки
type BlockedDateData struct {
	ID           int64
	PropertyID   int64
	PropertyName string
	StartDate    types.Date
	EndDate      types.Date
	Reason       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
