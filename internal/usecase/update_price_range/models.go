package update_price_range

import (
	"time"

	"github.com/emkoumo/bookingapp/pkg/types"
)

// Request модель запроса на изменение ценового диапазона
type Request struct {
	PriceRangeID  int64
	DateFrom      types.Date
	DateTo        types.Date
	PricePerNight float64
}

// Response модель ответа с обновленным диапазоном
type Response struct {
	ID            int64
	PropertyID    int64
	PropertyName  string
	DateFrom      types.Date
	DateTo        types.Date
	PricePerNight float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
