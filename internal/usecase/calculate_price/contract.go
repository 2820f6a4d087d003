package calculate_price

import (
	"context"

	"github.com/emkoumo/bookingapp/internal/domain"
)

// PriceRangeRepository интерфейс репозитория ценовых диапазонов
type PriceRangeRepository interface {
	ListByProperty(ctx context.Context, propertyID int64) ([]*domain.PriceRange, error)
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
