package update_price_range

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/emkoumo/bookingapp/internal/api/handlers"
	updatePriceRange "github.com/emkoumo/bookingapp/internal/usecase/update_price_range"
	"github.com/emkoumo/bookingapp/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRangeID     = "некорректный идентификатор ценового диапазона"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRangeNotFound      = "ценовой диапазон не найден"
	msgRangeOverlap       = "диапазон пересекается с существующим ценовым диапазоном"
)

// UpdatePriceRangeRequest HTTP request model
type UpdatePriceRangeRequest struct {
	DateFrom      string  `json:"dateFrom"`
	DateTo        string  `json:"dateTo"`
	PricePerNight float64 `json:"pricePerNight"`
}

// PriceRangeResponse HTTP response model
type PriceRangeResponse struct {
	ID            int64   `json:"id"`
	PropertyID    int64   `json:"propertyId"`
	PropertyName  string  `json:"propertyName"`
	DateFrom      string  `json:"dateFrom"`
	DateTo        string  `json:"dateTo"`
	PricePerNight float64 `json:"pricePerNight"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

type Handler struct {
	useCase UpdatePriceRangeUseCase
	logger  Logger
}

func NewHandler(useCase UpdatePriceRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/price-ranges/{priceRangeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	priceRangeID, err := strconv.ParseInt(mux.Vars(r)["priceRangeId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /price-ranges/{id} - Invalid price range id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRangeID)
		return
	}

	var req UpdatePriceRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /price-ranges/%d - Invalid request body: %v", priceRangeID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	dateFrom, err := types.ParseDate(req.DateFrom)
	if err != nil {
		h.logger.Warn("PUT /price-ranges/%d - Invalid dateFrom: %v", priceRangeID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	dateTo, err := types.ParseDate(req.DateTo)
	if err != nil {
		h.logger.Warn("PUT /price-ranges/%d - Invalid dateTo: %v", priceRangeID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updatePriceRange.Request{
		PriceRangeID:  priceRangeID,
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		PricePerNight: req.PricePerNight,
	})
	if err != nil {
		switch {
		case errors.Is(err, updatePriceRange.ErrPriceRangeNotFound):
			h.logger.Warn("PUT /price-ranges/%d - Price range not found", priceRangeID)
			handlers.RespondNotFound(w, msgRangeNotFound)

		case errors.Is(err, updatePriceRange.ErrRangeOverlap):
			h.logger.Warn("PUT /price-ranges/%d - Overlapping ranges", priceRangeID)
			handlers.RespondError(w, http.StatusConflict, msgRangeOverlap)

		case errors.Is(err, updatePriceRange.ErrInvalidInput):
			h.logger.Warn("PUT /price-ranges/%d - Invalid input: %v", priceRangeID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /price-ranges/%d - Failed to update: %v", priceRangeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /price-ranges/%d - Price range updated successfully", priceRangeID)
	handlers.RespondJSON(w, http.StatusOK, &PriceRangeResponse{
		ID:            result.ID,
		PropertyID:    result.PropertyID,
		PropertyName:  result.PropertyName,
		DateFrom:      result.DateFrom.String(),
		DateTo:        result.DateTo.String(),
		PricePerNight: result.PricePerNight,
		CreatedAt:     result.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     result.UpdatedAt.Format(time.RFC3339),
	})
}
