package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/emkoumo/bookingapp/internal/api/handlers"
	"github.com/emkoumo/bookingapp/internal/domain"
	updateBooking "github.com/emkoumo/bookingapp/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingCancelled   = "отменённое бронирование нельзя редактировать"
	msgDatesNotAvailable  = "выбранные даты недоступны"
	msgMissingPrices      = "не все даты проживания покрыты ценами"
)

// missingPricesResponse тело ответа 400 со списком непокрытых дат
type missingPricesResponse struct {
	Error        string   `json:"error"`
	MissingDates []string `json:"missingDates"`
}

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/%d - Failed to parse request: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var missingErr *domain.MissingPricesError

		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrBookingCancelled):
			h.logger.Warn("PUT /bookings/%d - Booking is cancelled", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingCancelled)

		case errors.Is(err, updateBooking.ErrBookingConflict):
			h.logger.Warn("PUT /bookings/%d - Dates not available", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgDatesNotAvailable)

		case errors.As(err, &missingErr):
			h.logger.Warn("PUT /bookings/%d - Missing prices for %d dates", bookingID, len(missingErr.MissingDates))
			dates := make([]string, 0, len(missingErr.MissingDates))
			for _, d := range missingErr.MissingDates {
				dates = append(dates, d.String())
			}
			handlers.RespondJSON(w, http.StatusBadRequest, missingPricesResponse{
				Error:        msgMissingPrices,
				MissingDates: dates,
			})

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/%d - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /bookings/%d - Failed to update booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%d - Booking updated successfully", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
