package update_booking

import (
	"time"

	updateBooking "github.com/emkoumo/bookingapp/internal/usecase/update_booking"
	"github.com/emkoumo/bookingapp/pkg/types"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	CustomerName   string  `json:"customerName"`
	ContactInfo    *string `json:"contactInfo,omitempty"`
	ContactChannel *string `json:"contactChannel,omitempty"`
	CheckIn        string  `json:"checkIn"`
	CheckOut       string  `json:"checkOut"`

	TotalPrice           *float64 `json:"totalPrice,omitempty"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
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

	return &updateBooking.Request{
		BookingID:            bookingID,
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
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	var advanceDate *string
	if resp.AdvancePaymentDate != nil {
		s := resp.AdvancePaymentDate.String()
		advanceDate = &s
	}

	return &BookingResponse{
		ID:                   resp.ID,
		PropertyID:           resp.PropertyID,
		PropertyName:         resp.PropertyName,
		CustomerName:         resp.CustomerName,
		ContactInfo:          resp.ContactInfo,
		ContactChannel:       resp.ContactChannel,
		CheckIn:              resp.CheckIn.String(),
		CheckOut:             resp.CheckOut.String(),
		Status:               resp.Status,
		NightsCount:          resp.NightsCount,
		TotalPrice:           resp.TotalPrice,
		AdvancePayment:       resp.AdvancePayment,
		RemainingBalance:     resp.RemainingBalance,
		AdvancePaymentMethod: resp.AdvancePaymentMethod,
		AdvancePaymentDate:   advanceDate,
		ExtraBed:             resp.ExtraBed,
		ExtraBedPrice:        resp.ExtraBedPrice,
		Notes:                resp.Notes,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
