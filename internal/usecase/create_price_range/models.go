package create_price_range

import (
	"time"

	"github.com/emkoumo/bookingapp/pkg/types"
)

// Request модель запроса на создание ценового диапазона.
// Для удобства один и тот же диапазон можно применить сразу к нескольким
// объектам - на каждый создаётся отдельная запись в одной транзакции.
type Request struct {
	PropertyIDs   []int64
	DateFrom      types.Date
	DateTo        types.Date
	PricePerNight float64
}

// Response модель ответа: один диапазон на каждый объект
type Response struct {
	PriceRanges []PriceRangeData
}

// PriceRangeData данные созданного ценового диапазона
type PriceRangeData struct {
	ID            int64
	PropertyID    int64
	PropertyName  string
	DateFrom      types.Date
	DateTo        types.Date
	PricePerNight float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
