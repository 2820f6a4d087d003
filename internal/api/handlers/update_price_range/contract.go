package update_price_range

import (
	"context"

	updatePriceRange "github.com/emkoumo/bookingapp/internal/usecase/update_price_range"
)

type UpdatePriceRangeUseCase interface {
	Execute(ctx context.Context, req *updatePriceRange.Request) (*updatePriceRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
