package businesses

import (
	"context"

	"github.com/emkoumo/bookingapp/internal/service/businesses/models"
)

type BusinessesService interface {
	List(ctx context.Context) (*models.BusinessListResponse, error)
	ListProperties(ctx context.Context, businessID int64) (*models.PropertyListResponse, error)
	ListPaymentMethods(ctx context.Context, businessID int64) (*models.PaymentMethodListResponse, error)
	GetPaymentDetails(ctx context.Context, businessID int64) (*models.PaymentDetailsResponse, error)
	ListEmailTemplates(ctx context.Context, businessID int64) (*models.EmailTemplateListResponse, error)
	UpdateEmailTemplate(ctx context.Context, req *models.UpdateEmailTemplateRequest) (*models.EmailTemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
