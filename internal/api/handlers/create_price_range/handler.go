package create_price_range

import (
	"errors"
	"net/http"
	"strings"

	"github.com/emkoumo/bookingapp/internal/api/handlers"
	createPriceRange "github.com/emkoumo/bookingapp/internal/usecase/create_price_range"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPropertyNotFound   = "объект размещения не найден"
	msgRangeOverlap       = "диапазон пересекается с существующим ценовым диапазоном"
)

// overlapResponse тело ответа 409 со списком объектов с пересечениями
type overlapResponse struct {
	Error      string   `json:"error"`
	Properties []string `json:"properties"`
}

type Handler struct {
	useCase CreatePriceRangeUseCase
	logger  Logger
}

func NewHandler(useCase CreatePriceRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/price-ranges
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePriceRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price-ranges - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /price-ranges - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var overlapErr *createPriceRange.OverlapError

		switch {
		case errors.As(err, &overlapErr):
			h.logger.Warn("POST /price-ranges - Overlapping ranges: properties=%s",
				strings.Join(overlapErr.PropertyNames, ", "))
			handlers.RespondJSON(w, http.StatusConflict, overlapResponse{
				Error:      msgRangeOverlap,
				Properties: overlapErr.PropertyNames,
			})

		case errors.Is(err, createPriceRange.ErrPropertyNotFound):
			h.logger.Warn("POST /price-ranges - Property not found: %v", err)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createPriceRange.ErrInvalidInput):
			h.logger.Warn("POST /price-ranges - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /price-ranges - Failed to create price range: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /price-ranges - Created %d range(s)", len(result.PriceRanges))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
