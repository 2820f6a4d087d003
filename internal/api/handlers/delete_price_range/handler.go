package delete_price_range

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/emkoumo/bookingapp/internal/api/handlers"
	"github.com/emkoumo/bookingapp/internal/service/pricelists"
)

const (
	msgInvalidRangeID = "некорректный идентификатор ценового диапазона"
	msgRangeNotFound  = "ценовой диапазон не найден"
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

// Handle DELETE /api/v1/price-ranges/{priceRangeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	priceRangeID, err := strconv.ParseInt(mux.Vars(r)["priceRangeId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /price-ranges/{id} - Invalid price range id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRangeID)
		return
	}

	if err := h.service.Delete(r.Context(), priceRangeID); err != nil {
		switch {
		case errors.Is(err, pricelists.ErrPriceRangeNotFound):
			h.logger.Warn("DELETE /price-ranges/%d - Price range not found", priceRangeID)
			handlers.RespondNotFound(w, msgRangeNotFound)

		default:
			h.logger.Error("DELETE /price-ranges/%d - Failed to delete: %v", priceRangeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /price-ranges/%d - Price range deleted successfully", priceRangeID)
	handlers.RespondNoContent(w)
}
