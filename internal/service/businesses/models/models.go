package models

import (
	"time"

	"github.com/emkoumo/bookingapp/internal/domain"
)

// BusinessResponse ответ с данными бизнеса
type BusinessResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BusinessListResponse ответ со списком бизнесов
type BusinessListResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

// PropertyResponse ответ с данными объекта размещения
type PropertyResponse struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"businessId"`
	Name       string `json:"name"`
}

// PropertyListResponse ответ со списком объектов размещения
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
}

// PaymentMethodResponse ответ с данными способа оплаты
type PaymentMethodResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// PaymentMethodListResponse ответ со списком способов оплаты
type PaymentMethodListResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"paymentMethods"`
}

// PaymentDetailsResponse банковские реквизиты для предоплаты
type PaymentDetailsResponse struct {
	BankName      string `json:"bankName"`
	AccountHolder string `json:"accountHolder"`
	IBAN          string `json:"iban"`
	BIC           string `json:"bic"`
}

// EmailTemplateResponse ответ с данными email-шаблона
type EmailTemplateResponse struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"businessId"`
	Name       string    `json:"name"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EmailTemplateListResponse ответ со списком email-шаблонов
type EmailTemplateListResponse struct {
	Templates []EmailTemplateResponse `json:"templates"`
}

// UpdateEmailTemplateRequest запрос на изменение email-шаблона.
// Имя шаблона фиксировано: редактируются только тема и тело.
type UpdateEmailTemplateRequest struct {
	TemplateID int64  `json:"-"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}

// Методы конвертации

// FromDomainBusiness конвертирует domain модель в DTO
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	if b == nil {
		return nil
	}
	return &BusinessResponse{ID: b.ID, Name: b.Name, Email: b.Email}
}

// FromDomainBusinessList конвертирует список domain моделей в DTO
func FromDomainBusinessList(businesses []*domain.Business) *BusinessListResponse {
	resp := &BusinessListResponse{Businesses: make([]BusinessResponse, 0, len(businesses))}
	for _, b := range businesses {
		if br := FromDomainBusiness(b); br != nil {
			resp.Businesses = append(resp.Businesses, *br)
		}
	}
	return resp
}

// FromDomainPropertyList конвертирует список domain моделей в DTO
func FromDomainPropertyList(properties []*domain.Property) *PropertyListResponse {
	resp := &PropertyListResponse{Properties: make([]PropertyResponse, 0, len(properties))}
	for _, p := range properties {
		resp.Properties = append(resp.Properties, PropertyResponse{
			ID:         p.ID,
			BusinessID: p.BusinessID,
			Name:       p.Name,
		})
	}
	return resp
}

// FromDomainPaymentMethodList конвертирует список domain моделей в DTO
func FromDomainPaymentMethodList(methods []*domain.PaymentMethod) *PaymentMethodListResponse {
	resp := &PaymentMethodListResponse{PaymentMethods: make([]PaymentMethodResponse, 0, len(methods))}
	for _, m := range methods {
		resp.PaymentMethods = append(resp.PaymentMethods, PaymentMethodResponse{
			ID:     m.ID,
			Name:   m.Name,
			Active: m.Active,
		})
	}
	return resp
}

// FromDomainBankDetails конвертирует domain модель в DTO
func FromDomainBankDetails(d *domain.BankDetails) *PaymentDetailsResponse {
	if d == nil {
		return nil
	}
	return &PaymentDetailsResponse{
		BankName:      d.BankName,
		AccountHolder: d.AccountHolder,
		IBAN:          d.IBAN,
		BIC:           d.BIC,
	}
}

// FromDomainEmailTemplate конвертирует domain модель в DTO
func FromDomainEmailTemplate(t *domain.EmailTemplate) *EmailTemplateResponse {
	if t == nil {
		return nil
	}
	return &EmailTemplateResponse{
		ID:         t.ID,
		BusinessID: t.BusinessID,
		Name:       t.Name,
		Subject:    t.Subject,
		Body:       t.Body,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// FromDomainEmailTemplateList конвертирует список domain моделей в DTO
func FromDomainEmailTemplateList(templates []*domain.EmailTemplate) *EmailTemplateListResponse {
	resp := &EmailTemplateListResponse{Templates: make([]EmailTemplateResponse, 0, len(templates))}
	for _, t := range templates {
		if tr := FromDomainEmailTemplate(t); tr != nil {
			resp.Templates = append(resp.Templates, *tr)
		}
	}
	return resp
}
