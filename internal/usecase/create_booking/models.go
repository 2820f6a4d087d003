package create_booking

import (
	"time"

	"github.com/emkoumo/bookingapp/pkg/types"
)

// Request модель запроса на создание бронирования.
// Бронирование может создаваться сразу на несколько объектов размещения -
// тогда на каждый объект создаётся отдельная запись, а цена считается один
// раз по первому объекту и применяется ко всем.
type Request struct {
	PropertyIDs    []int64    // ID объектов размещения (минимум один)
	CustomerName   string     // имя гостя
	ContactInfo    *string    // телефон/email/и т.п. (опционально)
	ContactChannel *string    // канал связи (опционально)
	CheckIn        types.Date // дата заезда
	CheckOut       types.Date // дата выезда (не включается в проживание)

	// TotalPrice - ручное переопределение цены. Если указано, расчёт по
	// ценовым диапазонам пропускается и значение принимается как есть.
	TotalPrice           *float64
	AdvancePayment       float64
	RemainingBalance     *float64 // переопределение остатка (только для одного объекта)
	AdvancePaymentMethod *string
	AdvancePaymentDate   *types.Date

	ExtraBed      bool
	ExtraBedPrice *float64
	Notes         *string
}

// Response модель ответа: одна запись бронирования на каждый объект
type Response struct {
	Bookings []BookingData
}

// BookingData данные созданного бронирования
type BookingData struct {
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
