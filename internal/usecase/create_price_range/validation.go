package create_price_range

import "fmt"

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

	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}

	// В отличие от блокировок, диапазон из одного дня не допускается
	if !req.DateFrom.Before(req.DateTo) {
		return fmt.Errorf("%w: dateFrom must be strictly before dateTo", ErrInvalidInput)
	}

	if req.PricePerNight <= 0 {
		return fmt.Errorf("%w: pricePerNight must be positive", ErrInvalidInput)
	}

	return nil
}
