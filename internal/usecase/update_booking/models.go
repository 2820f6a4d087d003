package update_booking

import (
	"time"

	"github.com/emkoumo/bookingapp/pkg/types"
)

// Request модель запроса на редактирование бронирования.
// Передаётся полный набор редактируемых полей; частичных обновлений нет.
type Request struct {
	BookingID      int64
	CustomerName   string
	ContactInfo    *string
	ContactChannel *string
	CheckIn        types.Date
	CheckOut       types.Date

	// TotalPrice - ручное переопределение цены. Если указано, пересчёт по
	// ценовым диапазонам пропускается.
	TotalPrice           *float64
	AdvancePayment       float64
	RemainingBalance     *float64
	AdvancePaymentMethod *string
	AdvancePaymentDate   *types.Date

	ExtraBed      bool
	ExtraBedPrice *float64
	Notes         *string
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID             int64
	PropertyID     int64
	PropertyName   string
	CustomerName   string
	ContactInfo    *string
	ContactChannel *string
	CheckIn        types.Date
	CheckOut       types.Date
	Status         string
	NightsCount    int

	TotalPrice           float64
	AdvancePayment       float64
	RemainingBalance     float64
	AdvancePaymentMethod *string
	AdvancePaymentDate   *types.Date

	ExtraBed      bool
	ExtraBedPrice *float64
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
