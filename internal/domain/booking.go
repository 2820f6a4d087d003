package domain

import (
	"time"

	"github.com/emkoumo/bookingapp/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a stay on a property over the half-open interval
// [CheckIn, CheckOut): the checkout day is neither billed nor blocked.
type Booking struct {
	ID             int64
	PropertyID     int64
	CustomerName   string
	ContactInfo    *string
	ContactChannel *string
	CheckIn        types.Date
	CheckOut       types.Date // exclusive
	Status         BookingStatus

	TotalPrice           float64
	AdvancePayment       float64
	RemainingBalance     float64
	AdvancePaymentMethod *string
	AdvancePaymentDate   *types.Date

	ExtraBed      bool
	ExtraBedPrice *float64
	Notes         *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts toward availability conflicts.
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsCancelled returns true if the booking has been cancelled.
// Cancellation is terminal: a cancelled booking never blocks new bookings.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// CanBeUpdated returns true if the booking can still be edited.
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusActive
}

// Nights returns the number of billable nights of the stay.
func (b *Booking) Nights() int {
	return b.CheckIn.DaysUntil(b.CheckOut)
}

// PropertyBookingsFilter is the filter for listing a property's bookings.
type PropertyBookingsFilter struct {
	PropertyID       int64          // required
	StartDate        *types.Date    // period start (optional)
	EndDate          *types.Date    // period end (optional)
	Status           *BookingStatus // status filter (optional)
	IncludeCancelled bool           // include cancelled bookings
}
