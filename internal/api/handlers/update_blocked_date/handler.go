package update_blocked_date

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/emkoumo/bookingapp/internal/api/handlers"
	updateBlockedDate "github.com/emkoumo/bookingapp/internal/usecase/update_blocked_date"
	"github.com/emkoumo/bookingapp/pkg/types"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidBlockedID    = "некорректный идентификатор блокировки"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBlockedDateNotFound = "блокировка не найдена"
	msgRangeNotFree        = "диапазон пересекается с бронированием или другой блокировкой"
)

// UpdateBlockedDateRequest HTTP request model
type UpdateBlockedDateRequest struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    *string `json:"reason,omitempty"`
}

// BlockedDateResponse HTTP response model
type BlockedDateResponse struct {
	ID           int64   `json:"id"`
	PropertyID   int64   `json:"propertyId"`
	PropertyName string  `json:"propertyName"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Reason       *string `json:"reason,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type Handler struct {
	useCase UpdateBlockedDateUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBlockedDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/blocked-dates/{blockedDateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockedDateID, err := strconv.ParseInt(mux.Vars(r)["blockedDateId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /blocked-dates/{id} - Invalid blocked date id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedID)
		return
	}

	var req UpdateBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /blocked-dates/%d - Invalid request body: %v", blockedDateID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startDate, err := types.ParseDate(req.StartDate)
	if err != nil {
		h.logger.Warn("PUT /blocked-dates/%d - Invalid startDate: %v", blockedDateID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := types.ParseDate(req.EndDate)
	if err != nil {
		h.logger.Warn("PUT /blocked-dates/%d - Invalid endDate: %v", blockedDateID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateBlockedDate.Request{
		BlockedDateID: blockedDateID,
		StartDate:     startDate,
		EndDate:       endDate,
		Reason:        req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateBlockedDate.ErrBlockedDateNotFound):
			h.logger.Warn("PUT /blocked-dates/%d - Blocked date not found", blockedDateID)
			handlers.RespondNotFound(w, msgBlockedDateNotFound)

		case errors.Is(err, updateBlockedDate.ErrDateConflict):
			h.logger.Warn("PUT /blocked-dates/%d - Range not free", blockedDateID)
			handlers.RespondError(w, http.StatusConflict, msgRangeNotFree)

		case errors.Is(err, updateBlockedDate.ErrInvalidInput):
			h.logger.Warn("PUT /blocked-dates/%d - Invalid input: %v", blockedDateID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /blocked-dates/%d - Failed to update: %v", blockedDateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /blocked-dates/%d - Blocked date updated successfully", blockedDateID)
	handlers.RespondJSON(w, http.StatusOK, &BlockedDateResponse{
		ID:           result.ID,
		PropertyID:   result.PropertyID,
		PropertyName: result.PropertyName,
		StartDate:    result.StartDate.String(),
		EndDate:      result.EndDate.String(),
		Reason:       result.Reason,
		CreatedAt:    result.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    result.UpdatedAt.Format(time.RFC3339),
	})
}
