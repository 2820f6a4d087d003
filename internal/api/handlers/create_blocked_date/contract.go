package create_blocked_date

import (
	"context"

	createBlockedDate "github.com/emkoumo/bookingapp/internal/usecase/create_blocked_date"
)

type CreateBlockedDateUseCase interface {
	Execute(ctx context.Context, req *createBlockedDate.Request) (*createBlockedDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
