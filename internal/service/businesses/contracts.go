package businesses

import (
	"context"

	"github.com/emkoumo/bookingapp/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	List(ctx context.Context) ([]*domain.Business, error)
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	ListProperties(ctx context.Context, businessID int64) ([]*domain.Property, error)
	ListPaymentMethods(ctx context.Context, businessID int64) ([]*domain.PaymentMethod, error)
}

// EmailTemplateRepository интерфейс репозитория email-шаблонов
type EmailTemplateRepository interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]*domain.EmailTemplate, error)
	GetByID(ctx context.Context, id int64) (*domain.EmailTemplate, error)
	Update(ctx context.Context, t *domain.EmailTemplate) (*domain.EmailTemplate, error)
}

// PaymentDetailsProvider выдаёт банковские реквизиты бизнеса.
// Реквизиты живут в конфигурации, а не в БД: их меняет оператор при деплое.
type PaymentDetailsProvider interface {
	PaymentDetails(businessID int64) (*domain.BankDetails, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
