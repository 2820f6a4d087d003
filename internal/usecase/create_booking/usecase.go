package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/emkoumo/bookingapp/internal/domain"
	businessRepo "github.com/emkoumo/bookingapp/internal/infra/storage/business"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Использует сериализуемую транзакцию: проверка конфликтов и вставка
// выполняются атомарно, мультиобъектное бронирование - всё или ничего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: properties=%v, customer=%q, checkIn=%s, checkOut=%s",
		req.PropertyIDs, req.CustomerName, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	nights := req.CheckIn.DaysUntil(req.CheckOut)

	// Переменная для хранения результата
	var created []createdBooking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = created[:0]

		// 2.1. Проверяем существование всех объектов размещения
		properties := make([]*domain.Property, 0, len(req.PropertyIDs))
		for _, propertyID := range req.PropertyIDs {
			property, err := uc.propertyRepo.GetProperty(txCtx, propertyID)
			if err != nil {
				if errors.Is(err, businessRepo.ErrPropertyNotFound) {
					uc.logger.Warn("CreateBooking: property id=%d not found", propertyID)
					return fmt.Errorf("%w: id=%d", ErrPropertyNotFound, propertyID)
				}
				uc.logger.Error("CreateBooking: failed to get property id=%d: %v", propertyID, err)
				return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
			}
			properties = append(properties, property)
		}

		// 2.2. Проверяем доступность дат на КАЖДОМ объекте (FOR UPDATE).
		// Собираем имена всех конфликтующих объектов, а не только первого.
		var conflictNames []string
		for _, property := range properties {
			active, err := uc.bookingRepo.ListActive(txCtx, property.ID, nil)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to list active bookings for property id=%d: %v",
					property.ID, err)
				return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
			}

			conflicts := domain.FindBookingConflicts(req.CheckIn, req.CheckOut, active, nil)
			if len(conflicts) > 0 {
				uc.logger.Warn("CreateBooking: property id=%d has %d conflicting bookings",
					property.ID, len(conflicts))
				conflictNames = append(conflictNames, property.Name)
			}
		}
		if len(conflictNames) > 0 {
			return &ConflictError{PropertyNames: conflictNames}
		}

		// 2.3. Считаем цену за проживание для одного объекта.
		// Ручное переопределение пропускает агрегатор; иначе цена считается
		// по диапазонам первого объекта и применяется ко всем.
		var totalPerProperty float64
		if req.TotalPrice != nil {
			totalPerProperty = domain.Round2(*req.TotalPrice)
		} else {
			ranges, err := uc.priceRangeRepo.ListByProperty(txCtx, properties[0].ID)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to list price ranges for property id=%d: %v",
					properties[0].ID, err)
				return fmt.Errorf("%w: failed to list price ranges: %v", ErrInternal, err)
			}

			quote, err := domain.AggregateNightlyPrices(req.CheckIn, req.CheckOut, ranges)
			if err != nil {
				var missingErr *domain.MissingPricesError
				if errors.As(err, &missingErr) {
					uc.logger.Warn("CreateBooking: missing prices for %d nights on property id=%d",
						len(missingErr.MissingDates), properties[0].ID)
					return err
				}
				uc.logger.Error("CreateBooking: failed to aggregate prices: %v", err)
				return fmt.Errorf("%w: failed to aggregate prices: %v", ErrInternal, err)
			}
			totalPerProperty = quote.TotalPrice
		}

		totalAll := domain.Round2(totalPerProperty * float64(len(properties)))

		// 2.4. Создаем по одной записи бронирования на каждый объект.
		// Аванс распределяется пропорционально цене объекта.
		for _, property := range properties {
			advance := domain.AllocateAdvance(req.AdvancePayment, totalPerProperty, totalAll)
			remaining := domain.Round2(totalPerProperty - advance)
			if req.RemainingBalance != nil && len(properties) == 1 {
				remaining = domain.Round2(*req.RemainingBalance)
			}

			booking := &domain.Booking{
				PropertyID:           property.ID,
				CustomerName:         req.CustomerName,
				ContactInfo:          req.ContactInfo,
				ContactChannel:       req.ContactChannel,
				CheckIn:              req.CheckIn,
				CheckOut:             req.CheckOut,
				Status:               domain.StatusActive,
				TotalPrice:           totalPerProperty,
				AdvancePayment:       advance,
				RemainingBalance:     remaining,
				AdvancePaymentMethod: req.AdvancePaymentMethod,
				AdvancePaymentDate:   req.AdvancePaymentDate,
				ExtraBed:             req.ExtraBed,
				ExtraBedPrice:        req.ExtraBedPrice,
				Notes:                req.Notes,
			}

			saved, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to create booking for property id=%d: %v",
					property.ID, err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}

			created = append(created, createdBooking{booking: saved, propertyName: property.Name})
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created %d booking(s)", len(created))

	// Конвертируем в response
	resp := &Response{Bookings: make([]BookingData, 0, len(created))}
	for _, c := range created {
		resp.Bookings = append(resp.Bookings, BookingData{
			ID:                   c.booking.ID,
			PropertyID:           c.booking.PropertyID,
			PropertyName:         c.propertyName,
			CustomerName:         c.booking.CustomerName,
			ContactInfo:          c.booking.ContactInfo,
			ContactChannel:       c.booking.ContactChannel,
			CheckIn:              c.booking.CheckIn,
			CheckOut:             c.booking.CheckOut,
			Status:               string(c.booking.Status),
			NightsCount:          nights,
			TotalPrice:           c.booking.TotalPrice,
			AdvancePayment:       c.booking.AdvancePayment,
			RemainingBalance:     c.booking.RemainingBalance,
			AdvancePaymentMethod: c.booking.AdvancePaymentMethod,
			AdvancePaymentDate:   c.booking.AdvancePaymentDate,
			ExtraBed:             c.booking.ExtraBed,
			ExtraBedPrice:        c.booking.ExtraBedPrice,
			Notes:                c.booking.Notes,
			CreatedAt:            c.booking.CreatedAt,
			UpdatedAt:            c.booking.UpdatedAt,
		})
	}

	return resp, nil
}

// createdBooking пара "бронирование + имя объекта" для сборки ответа
type createdBooking struct {
	booking      *domain.Booking
	propertyName string
}
