package create_blocked_date

import (
	"fmt"

	"github.com/emkoumo/bookingapp/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if len(req.PropertyIDs) == 0 {
		return fmt.Errorf("%w: at least one propertyId is required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.PropertyIDs))
	for _, id := range req.PropertyIDs {
		if id <= 0 {
			return fmt.Errorf("%w: propertyId must be positive", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate propertyId %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	// Закрытый диапазон: блокировка на один день допустима
	if req.StartDate.After(req.EndDate) {
		return fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}
