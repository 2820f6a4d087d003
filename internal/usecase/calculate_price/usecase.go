package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/emkoumo/bookingapp/internal/domain"
	businessRepo "github.com/emkoumo/bookingapp/internal/infra/storage/business"
)

// UseCase use case для предварительного расчета цены проживания.
// Использует тот же агрегатор, что и создание бронирования, поэтому
// предпросмотр и фактическая цена не могут разойтись.
type UseCase struct {
	priceRangeRepo PriceRangeRepository
	propertyRepo   PropertyRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	priceRangeRepo PriceRangeRepository,
	propertyRepo PropertyRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		priceRangeRepo: priceRangeRepo,
		propertyRepo:   propertyRepo,
		logger:         logger,
	}
}

// Execute выполняет use case расчета цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: property=%d, checkIn=%s, checkOut=%s",
		req.PropertyID, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if req.PropertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyId must be positive", ErrInvalidInput)
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return nil, fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}
	if !req.CheckIn.Before(req.CheckOut) {
		return nil, fmt.Errorf("%w: checkIn must be before checkOut", ErrInvalidInput)
	}

	// 2. Проверяем существование объекта размещения
	if _, err := uc.propertyRepo.GetProperty(ctx, req.PropertyID); err != nil {
		if errors.Is(err, businessRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CalculatePrice: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 3. Получаем ценовые диапазоны объекта
	ranges, err := uc.priceRangeRepo.ListByProperty(ctx, req.PropertyID)
	if err != nil {
		uc.logger.Error("CalculatePrice: failed to list price ranges for property id=%d: %v",
			req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to list price ranges: %v", ErrInternal, err)
	}

	// 4. Агрегируем цены по ночам
	quote, err := domain.AggregateNightlyPrices(req.CheckIn, req.CheckOut, ranges)
	if err != nil {
		var missingErr *domain.MissingPricesError
		if errors.As(err, &missingErr) {
			uc.logger.Warn("CalculatePrice: %d nights without prices on property id=%d",
				len(missingErr.MissingDates), req.PropertyID)
			return &Response{
				Success:      false,
				MissingDates: missingErr.MissingDates,
			}, nil
		}
		uc.logger.Error("CalculatePrice: failed to aggregate prices: %v", err)
		return nil, fmt.Errorf("%w: failed to aggregate prices: %v", ErrInternal, err)
	}

	breakdown := make([]NightPrice, 0, len(quote.Breakdown))
	for _, night := range quote.Breakdown {
		breakdown = append(breakdown, NightPrice{Date: night.Date, Price: night.Price})
	}

	uc.logger.Info("CalculatePrice: property=%d, nights=%d, total=%.2f",
		req.PropertyID, quote.NightsCount, quote.TotalPrice)

	return &Response{
		Success:     true,
		TotalPrice:  quote.TotalPrice,
		NightsCount: quote.NightsCount,
		Breakdown:   breakdown,
	}, nil
}
