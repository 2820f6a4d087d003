package businesses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emkoumo/bookingapp/internal/domain"
	businessRepo "github.com/emkoumo/bookingapp/internal/infra/storage/business"
	templateRepo "github.com/emkoumo/bookingapp/internal/infra/storage/emailtemplate"
	"github.com/emkoumo/bookingapp/internal/service/businesses/models"
)

// Service сервис для работы с бизнесами и их справочниками
type Service struct {
	businessRepo   BusinessRepository
	templateRepo   EmailTemplateRepository
	paymentDetails PaymentDetailsProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса бизнесов
func NewService(
	businessRepo BusinessRepository,
	templateRepo EmailTemplateRepository,
	paymentDetails PaymentDetailsProvider,
	logger Logger,
) *Service {
	return &Service{
		businessRepo:   businessRepo,
		templateRepo:   templateRepo,
		paymentDetails: paymentDetails,
		logger:         logger,
	}
}

// List получает все бизнесы
func (s *Service) List(ctx context.Context) (*models.BusinessListResponse, error) {
	s.logger.Info("List: fetching businesses")

	businesses, err := s.businessRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d businesses", len(businesses))
	return models.FromDomainBusinessList(businesses), nil
}

// GetByID получает бизнес по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BusinessResponse, error) {
	s.logger.Info("GetByID: fetching business id=%d", id)

	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetByID: business id=%d not found", id)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetByID: repository error for business id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBusiness(business), nil
}

// ListProperties получает объекты размещения бизнеса
func (s *Service) ListProperties(ctx context.Context, businessID int64) (*models.PropertyListResponse, error) {
	s.logger.Info("ListProperties: fetching properties for business=%d", businessID)

	if _, err := s.GetByID(ctx, businessID); err != nil {
		return nil, err
	}

	properties, err := s.businessRepo.ListProperties(ctx, businessID)
	if err != nil {
		s.logger.Error("ListProperties: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListProperties - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListProperties: successfully fetched %d properties for business=%d",
		len(properties), businessID)
	return models.FromDomainPropertyList(properties), nil
}

// ListPaymentMethods получает способы оплаты бизнеса
func (s *Service) ListPaymentMethods(ctx context.Context, businessID int64) (*models.PaymentMethodListResponse, error) {
	s.logger.Info("ListPaymentMethods: fetching payment methods for business=%d", businessID)

	if _, err := s.GetByID(ctx, businessID); err != nil {
		return nil, err
	}

	methods, err := s.businessRepo.ListPaymentMethods(ctx, businessID)
	if err != nil {
		s.logger.Error("ListPaymentMethods: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListPaymentMethods - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPaymentMethodList(methods), nil
}

// GetPaymentDetails получает банковские реквизиты бизнеса из конфигурации
func (s *Service) GetPaymentDetails(ctx context.Context, businessID int64) (*models.PaymentDetailsResponse, error) {
	s.logger.Info("GetPaymentDetails: fetching payment details for business=%d", businessID)

	if _, err := s.GetByID(ctx, businessID); err != nil {
		return nil, err
	}

	details, ok := s.paymentDetails.PaymentDetails(businessID)
	if !ok {
		s.logger.Warn("GetPaymentDetails: no bank details configured for business=%d", businessID)
		return nil, ErrPaymentDetailsNotConfigured
	}

	return models.FromDomainBankDetails(details), nil
}

// ListEmailTemplates получает email-шаблоны бизнеса
func (s *Service) ListEmailTemplates(ctx context.Context, businessID int64) (*models.EmailTemplateListResponse, error) {
	s.logger.Info("ListEmailTemplates: fetching templates for business=%d", businessID)

	if _, err := s.GetByID(ctx, businessID); err != nil {
		return nil, err
	}

	templates, err := s.templateRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("ListEmailTemplates: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListEmailTemplates - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmailTemplateList(templates), nil
}

// UpdateEmailTemplate изменяет тему и тело email-шаблона
func (s *Service) UpdateEmailTemplate(ctx context.Context, req *models.UpdateEmailTemplateRequest) (*models.EmailTemplateResponse, error) {
	s.logger.Info("UpdateEmailTemplate: updating template id=%d", req.TemplateID)

	if req.TemplateID <= 0 {
		return nil, fmt.Errorf("%w: templateId must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Subject) == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if len(req.Subject) > domain.MaxSubjectLength {
		return nil, fmt.Errorf("%w: subject exceeds %d characters", ErrInvalidInput, domain.MaxSubjectLength)
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, fmt.Errorf("%w: body is required", ErrInvalidInput)
	}

	current, err := s.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("UpdateEmailTemplate: template id=%d not found", req.TemplateID)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("UpdateEmailTemplate: repository error for template id=%d: %v", req.TemplateID, err)
		return nil, fmt.Errorf("%w: UpdateEmailTemplate - repository error: %v", ErrInternal, err)
	}

	current.Subject = req.Subject
	current.Body = req.Body

	updated, err := s.templateRepo.Update(ctx, current)
	if err != nil {
		s.logger.Error("UpdateEmailTemplate: failed to update template id=%d: %v", req.TemplateID, err)
		return nil, fmt.Errorf("%w: UpdateEmailTemplate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateEmailTemplate: successfully updated template id=%d", req.TemplateID)
	return models.FromDomainEmailTemplate(updated), nil
}
