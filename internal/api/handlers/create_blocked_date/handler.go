package create_blocked_date

import (
	"errors"
	"net/http"
	"strings"

	"github.com/emkoumo/bookingapp/internal/api/handlers"
	createBlockedDate "github.com/emkoumo/bookingapp/internal/usecase/create_blocked_date"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPropertyNotFound   = "объект размещения не найден"
	msgRangeNotFree       = "диапазон пересекается с бронированием или другой блокировкой"
)

// conflictResponse тело ответа 409 со списком конфликтующих объектов
type conflictResponse struct {
	Error      string   `json:"error"`
	Properties []string `json:"properties"`
}

type Handler struct {
	useCase CreateBlockedDateUseCase
	logger  Logger
}

func NewHandler(useCase CreateBlockedDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /blocked-dates - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createBlockedDate.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /blocked-dates - Range not free: properties=%s",
				strings.Join(conflictErr.PropertyNames, ", "))
			handlers.RespondJSON(w, http.StatusConflict, conflictResponse{
				Error:      msgRangeNotFree,
				Properties: conflictErr.PropertyNames,
			})

		case errors.Is(err, createBlockedDate.ErrPropertyNotFound):
			h.logger.Warn("POST /blocked-dates - Property not found: %v", err)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createBlockedDate.ErrInvalidInput):
			h.logger.Warn("POST /blocked-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /blocked-dates - Failed to create blocked date: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-dates - Created %d block(s)", len(result.BlockedDates))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
