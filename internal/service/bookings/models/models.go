package models

import (
	"errors"
	"time"

	"github.com/emkoumo/bookingapp/internal/domain"
	"github.com/emkoumo/bookingapp/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetPropertyBookingsRequest запрос на получение бронирований объекта
type GetPropertyBookingsRequest struct {
	PropertyID       int64       `json:"propertyId"`
	StartDate        *types.Date `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *types.Date `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string     `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool        `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetPropertyBookingsRequest) ToDomainFilter() (domain.PropertyBookingsFilter, error) {
	filter := domain.PropertyBookingsFilter{
		PropertyID:       r.PropertyID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64   `json:"id"`
	PropertyID     int64   `json:"propertyId"`
	CustomerName   string  `json:"customerName"`
	ContactInfo    *string `json:"contactInfo,omitempty"`
	ContactChannel *string `json:"contactChannel,omitempty"`
	CheckIn        string  `json:"checkIn"`  // "2025-07-01"
	CheckOut       string  `json:"checkOut"` // "2025-07-08"
	Status         string  `json:"status"`
	NightsCount    int     `json:"nightsCount"`

	TotalPrice           float64     `json:"totalPrice"`
	AdvancePayment       float64     `json:"advancePayment"`
	RemainingBalance     float64     `json:"remainingBalance"`
	AdvancePaymentMethod *string     `json:"advancePaymentMethod,omitempty"`
	AdvancePaymentDate   *types.Date `json:"advancePaymentDate,omitempty"`

	ExtraBed      bool     `json:"extraBed"`
	ExtraBedPrice *float64 `json:"extraBedPrice,omitempty"`
	Notes         *string  `json:"notes,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                   b.ID,
		PropertyID:           b.PropertyID,
		CustomerName:         b.CustomerName,
		ContactInfo:          b.ContactInfo,
		ContactChannel:       b.ContactChannel,
		CheckIn:              b.CheckIn.String(),
		CheckOut:             b.CheckOut.String(),
		Status:               string(b.Status),
		NightsCount:          b.Nights(),
		TotalPrice:           b.TotalPrice,
		AdvancePayment:       b.AdvancePayment,
		RemainingBalance:     b.RemainingBalance,
		AdvancePaymentMethod: b.AdvancePaymentMethod,
		AdvancePaymentDate:   b.AdvancePaymentDate,
		ExtraBed:             b.ExtraBed,
		ExtraBedPrice:        b.ExtraBedPrice,
		Notes:                b.Notes,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusActive,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
