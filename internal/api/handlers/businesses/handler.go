package businesses

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/emkoumo/bookingapp/internal/api/handlers"
	businessesService "github.com/emkoumo/bookingapp/internal/service/businesses"
	"github.com/emkoumo/bookingapp/internal/service/businesses/models"
)

const (
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidBusinessID       = "некорректный идентификатор бизнеса"
	msgInvalidTemplateID       = "некорректный идентификатор шаблона"
	msgBusinessNotFound        = "бизнес не найден"
	msgTemplateNotFound        = "шаблон письма не найден"
	msgPaymentDetailsNotFound  = "банковские реквизиты для бизнеса не настроены"
)

// Handler обслуживает справочные операции по бизнесам: список бизнесов и
// объектов, способы оплаты, банковские реквизиты, email-шаблоны.
type Handler struct {
	service BusinessesService
	logger  Logger
}

func NewHandler(service BusinessesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/businesses
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /businesses - Failed to fetch businesses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListProperties GET /api/v1/businesses/{businessId}/properties
func (h *Handler) HandleListProperties(w http.ResponseWriter, r *http.Request) {
	businessID, ok := h.parseBusinessID(w, r)
	if !ok {
		return
	}

	result, err := h.service.ListProperties(r.Context(), businessID)
	if err != nil {
		h.respondServiceError(w, r, businessID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListPaymentMethods GET /api/v1/businesses/{businessId}/payment-methods
func (h *Handler) HandleListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	businessID, ok := h.parseBusinessID(w, r)
	if !ok {
		return
	}

	result, err := h.service.ListPaymentMethods(r.Context(), businessID)
	if err != nil {
		h.respondServiceError(w, r, businessID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGetPaymentDetails GET /api/v1/businesses/{businessId}/payment-details
func (h *Handler) HandleGetPaymentDetails(w http.ResponseWriter, r *http.Request) {
	businessID, ok := h.parseBusinessID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetPaymentDetails(r.Context(), businessID)
	if err != nil {
		if errors.Is(err, businessesService.ErrPaymentDetailsNotConfigured) {
			h.logger.Warn("GET /businesses/%d/payment-details - Not configured", businessID)
			handlers.RespondNotFound(w, msgPaymentDetailsNotFound)
			return
		}
		h.respondServiceError(w, r, businessID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListEmailTemplates GET /api/v1/businesses/{businessId}/email-templates
func (h *Handler) HandleListEmailTemplates(w http.ResponseWriter, r *http.Request) {
	businessID, ok := h.parseBusinessID(w, r)
	if !ok {
		return
	}

	result, err := h.service.ListEmailTemplates(r.Context(), businessID)
	if err != nil {
		h.respondServiceError(w, r, businessID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateEmailTemplate PUT /api/v1/email-templates/{templateId}
func (h *Handler) HandleUpdateEmailTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, err := strconv.ParseInt(mux.Vars(r)["templateId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /email-templates/{id} - Invalid template id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	var req models.UpdateEmailTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /email-templates/%d - Invalid request body: %v", templateID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.TemplateID = templateID

	result, err := h.service.UpdateEmailTemplate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, businessesService.ErrTemplateNotFound):
			h.logger.Warn("PUT /email-templates/%d - Template not found", templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		case errors.Is(err, businessesService.ErrInvalidInput):
			h.logger.Warn("PUT /email-templates/%d - Invalid input: %v", templateID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /email-templates/%d - Failed to update: %v", templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /email-templates/%d - Template updated successfully", templateID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) parseBusinessID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s %s - Invalid business id: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return 0, false
	}
	return businessID, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, businessID int64, err error) {
	if errors.Is(err, businessesService.ErrBusinessNotFound) {
		h.logger.Warn("%s %s - Business %d not found", r.Method, r.URL.Path, businessID)
		handlers.RespondNotFound(w, msgBusinessNotFound)
		return
	}

	h.logger.Error("%s %s - Service error for business %d: %v", r.Method, r.URL.Path, businessID, err)
	handlers.RespondInternalError(w)
}
