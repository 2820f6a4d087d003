package get_blocked_dates

import (
	"context"

	"github.com/emkoumo/bookingapp/internal/service/blockeddates/models"
)

type BlockedDatesService interface {
	ListByProperty(ctx context.Context, propertyID int64) (*models.BlockedDateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
