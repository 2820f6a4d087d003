package get_disabled_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/emkoumo/bookingapp/internal/api/handlers"
	getDisabledDates "github.com/emkoumo/bookingapp/internal/usecase/get_disabled_dates"
	"github.com/emkoumo/bookingapp/pkg/types"
)

const (
	msgInvalidPropertyID = "некорректный идентификатор объекта размещения"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPropertyNotFound  = "объект размещения не найден"
)

// DisabledDatesResponse HTTP response model
type DisabledDatesResponse struct {
	DisabledDates []string `json:"disabledDates"`
}

type Handler struct {
	useCase GetDisabledDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetDisabledDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/disabled-dates[?from=...&to=...]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/disabled-dates - Invalid property id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	req := &getDisabledDates.Request{PropertyID: propertyID}

	if v := r.URL.Query().Get("from"); v != "" {
		d, err := types.ParseDate(v)
		if err != nil {
			h.logger.Warn("GET /properties/%d/disabled-dates - Invalid from: %v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.From = &d
	}

	if v := r.URL.Query().Get("to"); v != "" {
		d, err := types.ParseDate(v)
		if err != nil {
			h.logger.Warn("GET /properties/%d/disabled-dates - Invalid to: %v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.To = &d
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDisabledDates.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/%d/disabled-dates - Property not found", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, getDisabledDates.ErrInvalidInput):
			h.logger.Warn("GET /properties/%d/disabled-dates - Invalid input: %v", propertyID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /properties/%d/disabled-dates - Failed to fetch: %v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := &DisabledDatesResponse{DisabledDates: make([]string, 0, len(result.DisabledDates))}
	for _, d := range result.DisabledDates {
		resp.DisabledDates = append(resp.DisabledDates, d.String())
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
