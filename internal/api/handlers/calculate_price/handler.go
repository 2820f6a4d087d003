package calculate_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/emkoumo/bookingapp/internal/api/handlers"
	calculatePrice "github.com/emkoumo/bookingapp/internal/usecase/calculate_price"
	"github.com/emkoumo/bookingapp/pkg/types"
)

const (
	msgInvalidPropertyID = "некорректный идентификатор объекта размещения"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPropertyNotFound  = "объект размещения не найден"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/calculate-price?checkIn=...&checkOut=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/calculate-price - Invalid property id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	checkIn, err := types.ParseDate(r.URL.Query().Get("checkIn"))
	if err != nil {
		h.logger.Warn("GET /properties/%d/calculate-price - Invalid checkIn: %v", propertyID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	checkOut, err := types.ParseDate(r.URL.Query().Get("checkOut"))
	if err != nil {
		h.logger.Warn("GET /properties/%d/calculate-price - Invalid checkOut: %v", propertyID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &calculatePrice.Request{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/%d/calculate-price - Property not found", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("GET /properties/%d/calculate-price - Invalid input: %v", propertyID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /properties/%d/calculate-price - Failed to calculate: %v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
