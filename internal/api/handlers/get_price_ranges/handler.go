package get_price_ranges

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/emkoumo/bookingapp/internal/api/handlers"
	"github.com/emkoumo/bookingapp/internal/service/pricelists"
)

const (
	msgInvalidPropertyID = "некорректный идентификатор объекта размещения"
	msgPropertyNotFound  = "объект размещения не найден"
)

type Handler struct {
	service PriceListsService
	logger  Logger
}

func NewHandler(service PriceListsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/price-ranges
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/price-ranges - Invalid property id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	result, err := h.service.ListByProperty(r.Context(), propertyID)
	if err != nil {
		switch {
		case errors.Is(err, pricelists.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/%d/price-ranges - Property not found", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		default:
			h.logger.Error("GET /properties/%d/price-ranges - Failed to fetch: %v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
