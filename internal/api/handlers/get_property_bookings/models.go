package get_property_bookings

import (
	"net/url"
	"strconv"

	"github.com/emkoumo/bookingapp/internal/service/bookings/models"
	"github.com/emkoumo/bookingapp/pkg/types"
)

// ParseQuery собирает запрос сервиса из query-параметров:
// ?startDate=2025-07-01&endDate=2025-07-31&status=active&includeCancelled=true
func ParseQuery(propertyID int64, query url.Values) (*models.GetPropertyBookingsRequest, error) {
	req := &models.GetPropertyBookingsRequest{PropertyID: propertyID}

	if v := query.Get("startDate"); v != "" {
		d, err := types.ParseDate(v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &d
	}

	if v := query.Get("endDate"); v != "" {
		d, err := types.ParseDate(v)
		if err != nil {
			return nil, err
		}
		req.EndDate = &d
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("includeCancelled"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
