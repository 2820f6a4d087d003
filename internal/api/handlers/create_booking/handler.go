package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/emkoumo/bookingapp/internal/api/handlers"
	"github.com/emkoumo/bookingapp/internal/domain"
	createBooking "github.com/emkoumo/bookingapp/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPropertyNotFound   = "объект размещения не найден"
	msgDatesNotAvailable  = "выбранные даты недоступны"
	msgMissingPrices      = "не все даты проживания покрыты ценами"
)

// conflictResponse тело ответа 409 со списком конфликтующих объектов
type conflictResponse struct {
	Error      string   `json:"error"`
	Properties []string `json:"properties"`
}

// missingPricesResponse тело ответа 400 со списком непокрытых дат
type missingPricesResponse struct {
	Error        string   `json:"error"`
	MissingDates []string `json:"missingDates"`
}

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createBooking.ConflictError
		var missingErr *domain.MissingPricesError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Dates not available: properties=%s",
				strings.Join(conflictErr.PropertyNames, ", "))
			handlers.RespondJSON(w, http.StatusConflict, conflictResponse{
				Error:      msgDatesNotAvailable,
				Properties: conflictErr.PropertyNames,
			})

		case errors.As(err, &missingErr):
			h.logger.Warn("POST /bookings - Missing prices for %d dates", len(missingErr.MissingDates))
			dates := make([]string, 0, len(missingErr.MissingDates))
			for _, d := range missingErr.MissingDates {
				dates = append(dates, d.String())
			}
			handlers.RespondJSON(w, http.StatusBadRequest, missingPricesResponse{
				Error:        msgMissingPrices,
				MissingDates: dates,
			})

		case errors.Is(err, createBooking.ErrPropertyNotFound):
			h.logger.Warn("POST /bookings - Property not found: %v", err)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Created %d booking(s) for customer=%q",
		len(result.Bookings), req.CustomerName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
