package businesses

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emkoumo/bookingapp/internal/domain"
	businessRepo "github.com/emkoumo/bookingapp/internal/infra/storage/business"
	templateRepo "github.com/emkoumo/bookingapp/internal/infra/storage/emailtemplate"
	"github.com/emkoumo/bookingapp/internal/service/businesses/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBusinessRepo struct {
	businesses []*domain.Business
	methods    []*domain.PaymentMethod
}

func (f *fakeBusinessRepo) List(context.Context) ([]*domain.Business, error) {
	return f.businesses, nil
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, id int64) (*domain.Business, error) {
	for _, b := range f.businesses {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, businessRepo.ErrBusinessNotFound
}

func (f *fakeBusinessRepo) ListProperties(_ context.Context, businessID int64) ([]*domain.Property, error) {
	return []*domain.Property{{ID: 1, BusinessID: businessID, Name: "Sea View Apartment"}}, nil
}

func (f *fakeBusinessRepo) ListPaymentMethods(context.Context, int64) ([]*domain.PaymentMethod, error) {
	return f.methods, nil
}

type fakeTemplateRepo struct {
	templates map[int64]*domain.EmailTemplate
}

func (f *fakeTemplateRepo) ListByBusiness(context.Context, int64) ([]*domain.EmailTemplate, error) {
	out := make([]*domain.EmailTemplate, 0, len(f.templates))
	for _, t := range f.templates {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, id int64) (*domain.EmailTemplate, error) {
	t, ok := f.templates[id]
	if !ok {
		return nil, templateRepo.ErrTemplateNotFound
	}
	return t, nil
}

func (f *fakeTemplateRepo) Update(_ context.Context, t *domain.EmailTemplate) (*domain.EmailTemplate, error) {
	updated := *t
	updated.UpdatedAt = time.Now()
	f.templates[t.ID] = &updated
	return &updated, nil
}

type fakePaymentDetails struct {
	known map[int64]*domain.BankDetails
}

func (f *fakePaymentDetails) PaymentDetails(businessID int64) (*domain.BankDetails, bool) {
	d, ok := f.known[businessID]
	return d, ok
}

func newTestService(businesses *fakeBusinessRepo, templates *fakeTemplateRepo, details *fakePaymentDetails) *Service {
	if templates == nil {
		templates = &fakeTemplateRepo{templates: map[int64]*domain.EmailTemplate{}}
	}
	if details == nil {
		details = &fakePaymentDetails{known: map[int64]*domain.BankDetails{}}
	}
	return NewService(businesses, templates, details, nopLogger{})
}

func TestListAndGetByID(t *testing.T) {
	repo := &fakeBusinessRepo{businesses: []*domain.Business{
		{ID: 1, Name: "Coastal Rentals", Email: "info@coastal.example"},
	}}
	svc := newTestService(repo, nil, nil)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Businesses, 1)
	assert.Equal(t, "Coastal Rentals", list.Businesses[0].Name)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestGetPaymentDetails(t *testing.T) {
	repo := &fakeBusinessRepo{businesses: []*domain.Business{{ID: 1, Name: "Coastal Rentals"}}}
	details := &fakePaymentDetails{known: map[int64]*domain.BankDetails{
		1: {BankName: "Example Bank", AccountHolder: "Coastal Rentals Ltd", IBAN: "GR16...", BIC: "EXAMPGRAA"},
	}}
	svc := newTestService(repo, nil, details)

	resp, err := svc.GetPaymentDetails(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Example Bank", resp.BankName)
	assert.Equal(t, "Coastal Rentals Ltd", resp.AccountHolder)
}

func TestGetPaymentDetails_NotConfigured(t *testing.T) {
	repo := &fakeBusinessRepo{businesses: []*domain.Business{{ID: 1, Name: "Coastal Rentals"}}}
	svc := newTestService(repo, nil, nil)

	_, err := svc.GetPaymentDetails(context.Background(), 1)
	assert.ErrorIs(t, err, ErrPaymentDetailsNotConfigured)
}

func TestUpdateEmailTemplate(t *testing.T) {
	repo := &fakeBusinessRepo{businesses: []*domain.Business{{ID: 1, Name: "Coastal Rentals"}}}
	templates := &fakeTemplateRepo{templates: map[int64]*domain.EmailTemplate{
		3: {ID: 3, BusinessID: 1, Name: "booking_confirmation", Subject: "old", Body: "old body"},
	}}
	svc := newTestService(repo, templates, nil)

	resp, err := svc.UpdateEmailTemplate(context.Background(), &models.UpdateEmailTemplateRequest{
		TemplateID: 3,
		Subject:    "Your booking at {{property}}",
		Body:       "Dear {{customerName}}, ...",
	})
	require.NoError(t, err)
	assert.Equal(t, "Your booking at {{property}}", resp.Subject)
	// Имя шаблона не редактируется
	assert.Equal(t, "booking_confirmation", resp.Name)
}

func TestUpdateEmailTemplate_Validation(t *testing.T) {
	svc := newTestService(&fakeBusinessRepo{}, nil, nil)

	_, err := svc.UpdateEmailTemplate(context.Background(), &models.UpdateEmailTemplateRequest{
		TemplateID: 3,
		Subject:    "   ",
		Body:       "body",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateEmailTemplate(context.Background(), &models.UpdateEmailTemplateRequest{
		TemplateID: 3,
		Subject:    strings.Repeat("x", domain.MaxSubjectLength+1),
		Body:       "body",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateEmailTemplate(context.Background(), &models.UpdateEmailTemplateRequest{
		TemplateID: 9,
		Subject:    "subject",
		Body:       "body",
	})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
