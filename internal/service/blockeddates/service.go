package blockeddates

import (
	"context"
	"errors"
	"fmt"

	blockRepo "github.com/emkoumo/bookingapp/internal/infra/storage/blockeddate"
	"github.com/emkoumo/bookingapp/internal/service/blockeddates/models"
)

// Service сервис для работы с блокировками дат
type Service struct {
	blockedDateRepo BlockedDateRepository
	propertyRepo    PropertyRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	blockedDateRepo BlockedDateRepository,
	propertyRepo PropertyRepository,
	logger Logger,
) *Service {
	return &Service{
		blockedDateRepo: blockedDateRepo,
		propertyRepo:    propertyRepo,
		logger:          logger,
	}
}

// ListByProperty получает все блокировки объекта размещения
func (s *Service) ListByProperty(ctx context.Context, propertyID int64) (*models.BlockedDateListResponse, error) {
	s.logger.Info("ListByProperty: fetching blocked dates for property=%d", propertyID)

	if propertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyId must be positive", ErrInvalidInput)
	}

	if _, err := s.propertyRepo.GetProperty(ctx, propertyID); err != nil {
		s.logger.Warn("ListByProperty: property id=%d not found: %v", propertyID, err)
		return nil, ErrPropertyNotFound
	}

	blocks, err := s.blockedDateRepo.ListByProperty(ctx, propertyID, nil)
	if err != nil {
		s.logger.Error("ListByProperty: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: ListByProperty - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByProperty: successfully fetched %d blocked dates for property=%d",
		len(blocks), propertyID)
	return models.FromDomainBlockedDateList(blocks), nil
}

// Delete удаляет блокировку.
// Удаление жёсткое: в отличие от бронирований, блокировка не несёт
// платёжной истории и после снятия не нужна.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting blocked date id=%d", id)

	if _, err := s.blockedDateRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("Delete: blocked date id=%d not found", id)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("Delete: repository error for blocked date id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.blockedDateRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: failed to delete blocked date id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted blocked date id=%d", id)
	return nil
}
