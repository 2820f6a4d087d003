package update_blocked_date

import (
	"time"

	"github.com/emkoumo/bookingapp/pkg/types"
)

// Request модель запроса на изменение блокировки дат
type Request struct {
	BlockedDateID int64
	StartDate     types.Date
	EndDate       types.Date
	Reason        *string
}

// Response модель ответа с обновленной блокировкой
type Response struct {
	ID           int64
	PropertyID   int64
	PropertyName string
	StartDate    types.Date
	EndDate      types.Date
	Reason       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
