package update_blocked_date

import (
	"context"
	"errors"
	"fmt"

	"github.com/emkoumo/bookingapp/internal/domain"
	blockRepo "github.com/emkoumo/bookingapp/internal/infra/storage/blockeddate"
)

// UseCase use case для изменения блокировки дат
type UseCase struct {
	bookingRepo     BookingRepository
	blockedDateRepo BlockedDateRepository
	propertyRepo    PropertyRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedDateRepo BlockedDateRepository,
	propertyRepo PropertyRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		blockedDateRepo: blockedDateRepo,
		propertyRepo:    propertyRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case изменения блокировки.
// Проверка против других блокировок исключает саму редактируемую запись,
// поэтому сужение или сдвиг диапазона внутри себя не конфликтует.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBlockedDate: id=%d, start=%s, end=%s",
		req.BlockedDateID, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	if req.BlockedDateID <= 0 {
		return nil, fmt.Errorf("%w: blockedDateId must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.StartDate.After(req.EndDate) {
		return nil, fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	var result *domain.BlockedDate
	var propertyName string

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем текущую блокировку
		current, err := uc.blockedDateRepo.GetByID(txCtx, req.BlockedDateID)
		if err != nil {
			if errors.Is(err, blockRepo.ErrBlockedDateNotFound) {
				uc.logger.Warn("UpdateBlockedDate: blocked date id=%d not found", req.BlockedDateID)
				return ErrBlockedDateNotFound
			}
			uc.logger.Error("UpdateBlockedDate: failed to get blocked date id=%d: %v", req.BlockedDateID, err)
			return fmt.Errorf("%w: failed to get blocked date: %v", ErrInternal, err)
		}

		property, err := uc.propertyRepo.GetProperty(txCtx, current.PropertyID)
		if err != nil {
			uc.logger.Error("UpdateBlockedDate: failed to get property id=%d: %v", current.PropertyID, err)
			return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
		}
		propertyName = property.Name

		// 2.2. Проверяем конфликты, исключая саму запись (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListActive(txCtx, current.PropertyID, nil)
		if err != nil {
			uc.logger.Error("UpdateBlockedDate: failed to list active bookings: %v", err)
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		blocks, err := uc.blockedDateRepo.ListByProperty(txCtx, current.PropertyID, &current.ID)
		if err != nil {
			uc.logger.Error("UpdateBlockedDate: failed to list blocked dates: %v", err)
			return fmt.Errorf("%w: failed to list blocked dates: %v", ErrInternal, err)
		}

		bookingConflicts := domain.FindBlockConflictsWithBookings(req.StartDate, req.EndDate, bookings)
		blockConflicts := domain.FindBlockConflictsWithBlocks(req.StartDate, req.EndDate, blocks, &current.ID)
		if len(bookingConflicts) > 0 || len(blockConflicts) > 0 {
			uc.logger.Warn("UpdateBlockedDate: id=%d has %d booking and %d block conflicts",
				req.BlockedDateID, len(bookingConflicts), len(blockConflicts))
			return &ConflictError{PropertyNames: []string{property.Name}}
		}

		// 2.3. Сохраняем обновленную блокировку
		updated := &domain.BlockedDate{
			ID:         current.ID,
			PropertyID: current.PropertyID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			Reason:     req.Reason,
			CreatedAt:  current.CreatedAt,
		}

		result, err = uc.blockedDateRepo.Update(txCtx, updated)
		if err != nil {
			uc.logger.Error("UpdateBlockedDate: failed to update blocked date id=%d: %v", req.BlockedDateID, err)
			return fmt.Errorf("%w: failed to update blocked date: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBlockedDate: successfully updated blocked date id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		PropertyID:   result.PropertyID,
		PropertyName: propertyName,
		StartDate:    result.StartDate,
		EndDate:      result.EndDate,
		Reason:       result.Reason,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
