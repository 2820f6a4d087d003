package create_price_range

import (
	"context"
	"errors"
	"fmt"

	"github.com/emkoumo/bookingapp/internal/domain"
	businessRepo "github.com/emkoumo/bookingapp/internal/infra/storage/business"
)

// UseCase use case для создания ценового диапазона
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

// Execute выполняет use case создания ценового диапазона.
// Пересечение с другим диапазоном запрещено независимо от цены.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePriceRange: properties=%v, from=%s, to=%s, price=%.2f",
		req.PropertyIDs, req.DateFrom, req.DateTo, req.PricePerNight)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePriceRange: validation failed: %v", err)
		return nil, err
	}

	price := domain.Round2(req.PricePerNight)

	var created []createdRange

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = created[:0]

		// 2.1. Проверяем существование всех объектов
		properties := make([]*domain.Property, 0, len(req.PropertyIDs))
		for _, propertyID := range req.PropertyIDs {
			property, err := uc.propertyRepo.GetProperty(txCtx, propertyID)
			if err != nil {
				if errors.Is(err, businessRepo.ErrPropertyNotFound) {
					uc.logger.Warn("CreatePriceRange: property id=%d not found", propertyID)
					return fmt.Errorf("%w: id=%d", ErrPropertyNotFound, propertyID)
				}
				uc.logger.Error("CreatePriceRange: failed to get property id=%d: %v", propertyID, err)
				return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
			}
			properties = append(properties, property)
		}

		// 2.2. Проверяем пересечения с существующими диапазонами (FOR UPDATE)
		var overlapNames []string
		for _, property := range properties {
			ranges, err := uc.priceRangeRepo.ListByProperty(txCtx, property.ID)
			if err != nil {
				uc.logger.Error("CreatePriceRange: failed to list price ranges for property id=%d: %v",
					property.ID, err)
				return fmt.Errorf("%w: failed to list price ranges: %v", ErrInternal, err)
			}

			overlaps := domain.FindPriceRangeOverlaps(req.DateFrom, req.DateTo, ranges, nil)
			if len(overlaps) > 0 {
				uc.logger.Warn("CreatePriceRange: property id=%d has %d overlapping ranges",
					property.ID, len(overlaps))
				overlapNames = append(overlapNames, property.Name)
			}
		}
		if len(overlapNames) > 0 {
			return &OverlapError{PropertyNames: overlapNames}
		}

		// 2.3. Создаем по одному диапазону на каждый объект
		for _, property := range properties {
			pr := &domain.PriceRange{
				PropertyID:    property.ID,
				DateFrom:      req.DateFrom,
				DateTo:        req.DateTo,
				PricePerNight: price,
			}

			saved, err := uc.priceRangeRepo.Create(txCtx, pr)
			if err != nil {
				uc.logger.Error("CreatePriceRange: failed to create range for property id=%d: %v",
					property.ID, err)
				return fmt.Errorf("%w: failed to create price range: %v", ErrInternal, err)
			}

			created = append(created, createdRange{pr: saved, propertyName: property.Name})
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreatePriceRange: successfully created %d range(s)", len(created))

	// Конвертируем в response
	resp := &Response{PriceRanges: make([]PriceRangeData, 0, len(created))}
	for _, c := range created {
		resp.PriceRanges = append(resp.PriceRanges, PriceRangeData{
			ID:            c.pr.ID,
			PropertyID:    c.pr.PropertyID,
			PropertyName:  c.propertyName,
			DateFrom:      c.pr.DateFrom,
			DateTo:        c.pr.DateTo,
			PricePerNight: c.pr.PricePerNight,
			CreatedAt:     c.pr.CreatedAt,
			UpdatedAt:     c.pr.UpdatedAt,
		})
	}

	return resp, nil
}

// createdRange пара "диапазон + имя объекта" для сборки ответа
type createdRange struct {
	pr           *domain.PriceRange
	propertyName string
}
