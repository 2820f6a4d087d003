package create_price_range

import (
	"context"

	"github.com/emkoumo/bookingapp/internal/domain"
)

// PriceRangeRepository интерфейс репозитория ценовых диапазонов
type PriceRangeRepository interface {
	Create(ctx context.Context, pr *domain.PriceRange) (*domain.PriceRange, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]*domain.PriceRange, error)
}

// PropertyRepository интерфейс для получения объектов размещения
type PropertyRepository interface {
	GetProperty(ctx context.Context, id int64) (*domain.Property, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
