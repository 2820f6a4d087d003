package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/emkoumo/bookingapp/internal/domain"
	bookingRepo "github.com/emkoumo/bookingapp/internal/infra/storage/booking"
)

// UseCase use case для редактирования бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	priceRangeRepo PriceRangeRepository
	propertyRepo   PropertyRepository
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	priceRangeRepo PriceRangeRepository,
	propertyRepo PropertyRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		priceRangeRepo: priceRangeRepo,
		propertyRepo:   propertyRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case редактирования бронирования.
// Проверка конфликтов исключает само редактируемое бронирование, поэтому
// сдвиг дат внутри собственного интервала не считается пересечением.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d, checkIn=%s, checkOut=%s",
		req.BookingID, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var propertyName string

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем текущее бронирование
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Отменённые бронирования не редактируются
		if !current.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d is cancelled", req.BookingID)
			return ErrBookingCancelled
		}

		property, err := uc.propertyRepo.GetProperty(txCtx, current.PropertyID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get property id=%d: %v", current.PropertyID, err)
			return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
		}
		propertyName = property.Name

		// 2.2. Проверяем доступность новых дат, исключая само бронирование
		active, err := uc.bookingRepo.ListActive(txCtx, current.PropertyID, &current.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to list active bookings for property id=%d: %v",
				current.PropertyID, err)
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		conflicts := domain.FindBookingConflicts(req.CheckIn, req.CheckOut, active, &current.ID)
		if len(conflicts) > 0 {
			uc.logger.Warn("UpdateBooking: booking id=%d has %d conflicts on property id=%d",
				req.BookingID, len(conflicts), current.PropertyID)
			return &ConflictError{PropertyNames: []string{property.Name}}
		}

		// 2.3. Пересчитываем цену, если она не переопределена вручную
		var total float64
		if req.TotalPrice != nil {
			total = domain.Round2(*req.TotalPrice)
		} else {
			ranges, err := uc.priceRangeRepo.ListByProperty(txCtx, current.PropertyID)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to list price ranges for property id=%d: %v",
					current.PropertyID, err)
				return fmt.Errorf("%w: failed to list price ranges: %v", ErrInternal, err)
			}

			quote, err := domain.AggregateNightlyPrices(req.CheckIn, req.CheckOut, ranges)
			if err != nil {
				var missingErr *domain.MissingPricesError
				if errors.As(err, &missingErr) {
					uc.logger.Warn("UpdateBooking: missing prices for %d nights on property id=%d",
						len(missingErr.MissingDates), current.PropertyID)
					return err
				}
				uc.logger.Error("UpdateBooking: failed to aggregate prices: %v", err)
				return fmt.Errorf("%w: failed to aggregate prices: %v", ErrInternal, err)
			}
			total = quote.TotalPrice
		}

		advance := domain.Round2(req.AdvancePayment)
		remaining := domain.Round2(total - advance)
		if req.RemainingBalance != nil {
			remaining = domain.Round2(*req.RemainingBalance)
		}

		// 2.4. Собираем обновленное бронирование и сохраняем
		updated := &domain.Booking{
			ID:                   current.ID,
			PropertyID:           current.PropertyID,
			CustomerName:         req.CustomerName,
			ContactInfo:          req.ContactInfo,
			ContactChannel:       req.ContactChannel,
			CheckIn:              req.CheckIn,
			CheckOut:             req.CheckOut,
			Status:               current.Status,
			TotalPrice:           total,
			AdvancePayment:       advance,
			RemainingBalance:     remaining,
			AdvancePaymentMethod: req.AdvancePaymentMethod,
			AdvancePaymentDate:   req.AdvancePaymentDate,
			ExtraBed:             req.ExtraBed,
			ExtraBedPrice:        req.ExtraBedPrice,
			Notes:                req.Notes,
			CreatedAt:            current.CreatedAt,
		}

		result, err = uc.bookingRepo.Update(txCtx, updated)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:                   result.ID,
		PropertyID:           result.PropertyID,
		PropertyName:         propertyName,
		CustomerName:         result.CustomerName,
		ContactInfo:          result.ContactInfo,
		ContactChannel:       result.ContactChannel,
		CheckIn:              result.CheckIn,
		CheckOut:             result.CheckOut,
		Status:               string(result.Status),
		NightsCount:          result.Nights(),
		TotalPrice:           result.TotalPrice,
		AdvancePayment:       result.AdvancePayment,
		RemainingBalance:     result.RemainingBalance,
		AdvancePaymentMethod: result.AdvancePaymentMethod,
		AdvancePaymentDate:   result.AdvancePaymentDate,
		ExtraBed:             result.ExtraBed,
		ExtraBedPrice:        result.ExtraBedPrice,
		Notes:                result.Notes,
		CreatedAt:            result.CreatedAt,
		UpdatedAt:            result.UpdatedAt,
	}, nil
}
