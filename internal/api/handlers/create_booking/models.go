package create_booking

import (
	"time"

	createBooking "github.com/emkoumo/bookingapp/internal/usecase/create_booking"
	"github.com/emkoumo/bookingapp/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PropertyIDs    []int64 `json:"propertyIds"`
	CustomerName   string  `json:"customerName"`
	ContactInfo    *string `json:"contactInfo,omitempty"`
	ContactChannel *string `json:"contactChannel,omitempty"`
	CheckIn        string  `json:"checkIn"`  // "2025-07-01"
	CheckOut       string  `json:"checkOut"` // "2025-07-08"

	TotalPrice           *float64 `json:"totalPrice,omitempty"` // ручное переопределение цены
	AdvancePayment       float64  `json:"advancePayment"`
	RemainingBalance     *float64 `json:"remainingBalance,omitempty"`
	AdvancePaymentMethod *string  `json:"advancePaymentMethod,omitempty"`
	AdvancePaymentDate   *string  `json:"advancePaymentDate,omitempty"`

	ExtraBed      bool     `json:"extraBed"`
	ExtraBedPrice *float64 `json:"extraBedPrice,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	PropertyID     int64   `json:"propertyId"`
	PropertyName   string  `json:"propertyName"`
	CustomerName   string  `json:"customerName"`
	ContactInfo    *string `json:"contactInfo,omitempty"`
	ContactChannel *string `json:"contactChannel,omitempty"`
	CheckIn        string  `json:"checkIn"`
	CheckOut       string  `json:"checkOut"`
	Status         string  `json:"status"`
	NightsCount    int     `json:"nightsCount"`

	TotalPrice           float64 `json:"totalPrice"`
	AdvancePayment       float64 `json:"advancePayment"`
	RemainingBalance     float64 `json:"remainingBalance"`
	AdvancePaymentMethod *string `json:"advancePaymentMethod,omitempty"`
	AdvancePaymentDate   *string `json:"advancePaymentDate,omitempty"`

	ExtraBed      bool     `json:"extraBed"`
	ExtraBedPrice *float64 `json:"extraBedPrice,omitempty"`
	Notes         *string  `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateBookingResponse HTTP response со списком созданных бронирований
type CreateBookingResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := types.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := types.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	var advanceDate *types.Date
	if r.AdvancePaymentDate != nil {
		d, err := types.ParseDate(*r.AdvancePaymentDate)
		if err != nil {
			return nil, err
		}
		advanceDate = &d
	}

	return &createBooking.Request{
		PropertyIDs:          r.PropertyIDs,
		CustomerName:         r.CustomerName,
		ContactInfo:          r.ContactInfo,
		ContactChannel:       r.ContactChannel,
		CheckIn:              checkIn,
		CheckOut:             checkOut,
		TotalPrice:           r.TotalPrice,
		AdvancePayment:       r.AdvancePayment,
		RemainingBalance:     r.RemainingBalance,
		AdvancePaymentMethod: r.AdvancePaymentMethod,
		AdvancePaymentDate:   advanceDate,
		ExtraBed:             r.ExtraBed,
		ExtraBedPrice:        r.ExtraBedPrice,
		Notes:                r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	out := &CreateBookingResponse{
		Bookings: make([]BookingResponse, 0, len(resp.Bookings)),
	}

	for _, b := range resp.Bookings {
		var advanceDate *string
		if b.AdvancePaymentDate != nil {
			s := b.AdvancePaymentDate.String()
			advanceDate = &s
		}

		out.Bookings = append(out.Bookings, BookingResponse{
			ID:                   b.ID,
			PropertyID:           b.PropertyID,
			PropertyName:         b.PropertyName,
			CustomerName:         b.CustomerName,
			ContactInfo:          b.ContactInfo,
			ContactChannel:       b.ContactChannel,
			CheckIn:              b.CheckIn.String(),
			CheckOut:             b.CheckOut.String(),
			Status:               b.Status,
			NightsCount:          b.NightsCount,
			TotalPrice:           b.TotalPrice,
			AdvancePayment:       b.AdvancePayment,
			RemainingBalance:     b.RemainingBalance,
			AdvancePaymentMethod: b.AdvancePaymentMethod,
			AdvancePaymentDate:   advanceDate,
			ExtraBed:             b.ExtraBed,
			ExtraBedPrice:        b.ExtraBedPrice,
			Notes:                b.Notes,
			CreatedAt:            b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:            b.UpdatedAt.Format(time.RFC3339),
		})
	}

	return out
}
