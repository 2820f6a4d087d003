package create_price_range

import (
	"context"

	createPriceRange "github.com/emkoumo/bookingapp/internal/usecase/create_price_range"
)

type CreatePriceRangeUseCase interface {
	Execute(ctx context.Context, req *createPriceRange.Request) (*createPriceRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
