package delete_blocked_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/emkoumo/bookingapp/internal/api/handlers"
	"github.com/emkoumo/bookingapp/internal/service/blockeddates"
)

const (
	msgInvalidBlockedID    = "некорректный идентификатор блокировки"
	msgBlockedDateNotFound = "блокировка не найдена"
)

type Handler struct {
	service BlockedDatesService
	logger  Logger
}

func NewHandler(service BlockedDatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/blocked-dates/{blockedDateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockedDateID, err := strconv.ParseInt(mux.Vars(r)["blockedDateId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /blocked-dates/{id} - Invalid blocked date id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedID)
		return
	}

	if err := h.service.Delete(r.Context(), blockedDateID); err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /blocked-dates/%d - Blocked date not found", blockedDateID)
			handlers.RespondNotFound(w, msgBlockedDateNotFound)

		default:
			h.logger.Error("DELETE /blocked-dates/%d - Failed to delete: %v", blockedDateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-dates/%d - Blocked date deleted successfully", blockedDateID)
	handlers.RespondNoContent(w)
}
