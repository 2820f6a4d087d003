package get_price_ranges

import (
	"context"

	"github.com/emkoumo/bookingapp/internal/service/pricelists/models"
)

type PriceListsService interface {
	ListByProperty(ctx context.Context, propertyID int64) (*models.PriceRangeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
