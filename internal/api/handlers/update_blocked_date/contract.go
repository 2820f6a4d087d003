package update_blocked_date

import (
	"context"

	updateBlockedDate "github.com/emkoumo/bookingapp/internal/usecase/update_blocked_date"
)

type UpdateBlockedDateUseCase interface {
	Execute(ctx context.Context, req *updateBlockedDate.Request) (*updateBlockedDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
