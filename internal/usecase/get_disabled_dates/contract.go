package get_disabled_dates

import (
	"context"

	"github.com/emkoumo/bookingapp/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActive(ctx context.Context, propertyID int64, excludeID *int64) ([]*domain.Booking, error)
}

// BlockedDateRepository интерфейс репозитория блокировок дат
type BlockedDateRepository interface {
	ListByProperty(ctx context.Context, propertyID int64, excludeID *int64) ([]*domain.BlockedDate, error)
}

// PropertyRepository интерфейс для получения объектов размещения
type PropertyRepository interface {
	GetProperty(ctx context.Context, id int64) (*domain.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
