package update_price_range

import (
	"context"
	"errors"
	"fmt"

	"github.com/emkoumo/bookingapp/internal/domain"
	priceRepo "github.com/emkoumo/bookingapp/internal/infra/storage/pricerange"
)

// UseCase use case для изменения ценового диапазона
type UseCase struct {
	priceRangeRepo PriceRangeRepository
	propertyRepo   PropertyRepository
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	priceRangeRepo PriceRangeRepository,
	propertyRepo PropertyRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		priceRangeRepo: priceRangeRepo,
		propertyRepo:   propertyRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case изменения ценового диапазона.
// Пересечения проверяются без учета самой редактируемой записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdatePriceRange: id=%d, from=%s, to=%s, price=%.2f",
		req.PriceRangeID, req.DateFrom, req.DateTo, req.PricePerNight)

	// 1. Валидация входных данных
	if req.PriceRangeID <= 0 {
		return nil, fmt.Errorf("%w: priceRangeId must be positive", ErrInvalidInput)
	}
	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return nil, fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}
	if !req.DateFrom.Before(req.DateTo) {
		return nil, fmt.Errorf("%w: dateFrom must be strictly before dateTo", ErrInvalidInput)
	}
	if req.PricePerNight <= 0 {
		return nil, fmt.Errorf("%w: pricePerNight must be positive", ErrInvalidInput)
	}

	price := domain.Round2(req.PricePerNight)

	var result *domain.PriceRange
	var propertyName string

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем текущий диапазон
		current, err := uc.priceRangeRepo.GetByID(txCtx, req.PriceRangeID)
		if err != nil {
			if errors.Is(err, priceRepo.ErrPriceRangeNotFound) {
				uc.logger.Warn("UpdatePriceRange: price range id=%d not found", req.PriceRangeID)
				return ErrPriceRangeNotFound
			}
			uc.logger.Error("UpdatePriceRange: failed to get price range id=%d: %v", req.PriceRangeID, err)
			return fmt.Errorf("%w: failed to get price range: %v", ErrInternal, err)
		}

		property, err := uc.propertyRepo.GetProperty(txCtx, current.PropertyID)
		if err != nil {
			uc.logger.Error("UpdatePriceRange: failed to get property id=%d: %v", current.PropertyID, err)
			return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
		}
		propertyName = property.Name

		// 2.2. Проверяем пересечения, исключая саму запись (FOR UPDATE)
		ranges, err := uc.priceRangeRepo.ListByProperty(txCtx, current.PropertyID)
		if err != nil {
			uc.logger.Error("UpdatePriceRange: failed to list price ranges: %v", err)
			return fmt.Errorf("%w: failed to list price ranges: %v", ErrInternal, err)
		}

		overlaps := domain.FindPriceRangeOverlaps(req.DateFrom, req.DateTo, ranges, &current.ID)
		if len(overlaps) > 0 {
			uc.logger.Warn("UpdatePriceRange: id=%d has %d overlapping ranges", req.PriceRangeID, len(overlaps))
			return &OverlapError{PropertyNames: []string{property.Name}}
		}

		// 2.3. Сохраняем обновленный диапазон
		updated := &domain.PriceRange{
			ID:            current.ID,
			PropertyID:    current.PropertyID,
			DateFrom:      req.DateFrom,
			DateTo:        req.DateTo,
			PricePerNight: price,
			CreatedAt:     current.CreatedAt,
		}

		result, err = uc.priceRangeRepo.Update(txCtx, updated)
		if err != nil {
			uc.logger.Error("UpdatePriceRange: failed to update price range id=%d: %v", req.PriceRangeID, err)
			return fmt.Errorf("%w: failed to update price range: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdatePriceRange: successfully updated price range id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		PropertyID:    result.PropertyID,
		PropertyName:  propertyName,
		DateFrom:      result.DateFrom,
		DateTo:        result.DateTo,
		PricePerNight: result.PricePerNight,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
