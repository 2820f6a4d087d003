package update_booking

import (
	"fmt"
	"strings"

	"github.com/emkoumo/bookingapp/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}
	if !req.CheckIn.Before(req.CheckOut) {
		return fmt.Errorf("%w: checkIn must be before checkOut", ErrInvalidInput)
	}

	if req.TotalPrice != nil && *req.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	}
	if req.AdvancePayment < 0 {
		return fmt.Errorf("%w: advancePayment must not be negative", ErrInvalidInput)
	}
	if req.ExtraBedPrice != nil && *req.ExtraBedPrice < 0 {
		return fmt.Errorf("%w: extraBedPrice must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
