package pricelists

import (
	"context"
	"errors"
	"fmt"

	priceRepo "github.com/emkoumo/bookingapp/internal/infra/storage/pricerange"
	"github.com/emkoumo/bookingapp/internal/service/pricelists/models"
)

// Service сервис для работы с ценовыми диапазонами
type Service struct {
	priceRangeRepo PriceRangeRepository
	propertyRepo   PropertyRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса прайс-листов
func NewService(
	priceRangeRepo PriceRangeRepository,
	propertyRepo PropertyRepository,
	logger Logger,
) *Service {
	return &Service{
		priceRangeRepo: priceRangeRepo,
		propertyRepo:   propertyRepo,
		logger:         logger,
	}
}

// ListByProperty получает все ценовые диапазоны объекта размещения
func (s *Service) ListByProperty(ctx context.Context, propertyID int64) (*models.PriceRangeListResponse, error) {
	s.logger.Info("ListByProperty: fetching price ranges for property=%d", propertyID)

	if propertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyId must be positive", ErrInvalidInput)
	}

	if _, err := s.propertyRepo.GetProperty(ctx, propertyID); err != nil {
		s.logger.Warn("ListByProperty: property id=%d not found: %v", propertyID, err)
		return nil, ErrPropertyNotFound
	}

	ranges, err := s.priceRangeRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		s.logger.Error("ListByProperty: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: ListByProperty - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByProperty: successfully fetched %d price ranges for property=%d",
		len(ranges), propertyID)
	return models.FromDomainPriceRangeList(ranges), nil
}

// Delete удаляет ценовой диапазон. Удаление жёсткое: существующие
// бронирования хранят зафиксированную цену и от диапазона не зависят.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting price range id=%d", id)

	if _, err := s.priceRangeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, priceRepo.ErrPriceRangeNotFound) {
			s.logger.Warn("Delete: price range id=%d not found", id)
			return ErrPriceRangeNotFound
		}
		s.logger.Error("Delete: repository error for price range id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.priceRangeRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: failed to delete price range id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted price range id=%d", id)
	return nil
}
