package create_blocked_date

import (
	"context"
	"errors"
	"fmt"

	"github.com/emkoumo/bookingapp/internal/domain"
	businessRepo "github.com/emkoumo/bookingapp/internal/infra/storage/business"
)

// UseCase use case для блокировки дат на объектах размещения
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

// Execute выполняет use case блокировки дат.
// Блокировка сверяется и с активными бронированиями, и с другими
// блокировками закрытым интервальным тестом - исключения для дня выезда
// здесь нет: граничные дни блокировки заняты полностью.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBlockedDate: properties=%v, start=%s, end=%s",
		req.PropertyIDs, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBlockedDate: validation failed: %v", err)
		return nil, err
	}

	var created []createdBlock

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = created[:0]

		// 2.1. Проверяем существование всех объектов
		properties := make([]*domain.Property, 0, len(req.PropertyIDs))
		for _, propertyID := range req.PropertyIDs {
			property, err := uc.propertyRepo.GetProperty(txCtx, propertyID)
			if err != nil {
				if errors.Is(err, businessRepo.ErrPropertyNotFound) {
					uc.logger.Warn("CreateBlockedDate: property id=%d not found", propertyID)
					return fmt.Errorf("%w: id=%d", ErrPropertyNotFound, propertyID)
				}
				uc.logger.Error("CreateBlockedDate: failed to get property id=%d: %v", propertyID, err)
				return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
			}
			properties = append(properties, property)
		}

		// 2.2. Проверяем конфликты на КАЖДОМ объекте (FOR UPDATE)
		var conflictNames []string
		for _, property := range properties {
			bookings, err := uc.bookingRepo.ListActive(txCtx, property.ID, nil)
			if err != nil {
				uc.logger.Error("CreateBlockedDate: failed to list active bookings for property id=%d: %v",
					property.ID, err)
				return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
			}

			blocks, err := uc.blockedDateRepo.ListByProperty(txCtx, property.ID, nil)
			if err != nil {
				uc.logger.Error("CreateBlockedDate: failed to list blocked dates for property id=%d: %v",
					property.ID, err)
				return fmt.Errorf("%w: failed to list blocked dates: %v", ErrInternal, err)
			}

			bookingConflicts := domain.FindBlockConflictsWithBookings(req.StartDate, req.EndDate, bookings)
			blockConflicts := domain.FindBlockConflictsWithBlocks(req.StartDate, req.EndDate, blocks, nil)
			if len(bookingConflicts) > 0 || len(blockConflicts) > 0 {
				uc.logger.Warn("CreateBlockedDate: property id=%d has %d booking and %d block conflicts",
					property.ID, len(bookingConflicts), len(blockConflicts))
				conflictNames = append(conflictNames, property.Name)
			}
		}
		if len(conflictNames) > 0 {
			return &ConflictError{PropertyNames: conflictNames}
		}

		// 2.3. Создаем по одной блокировке на каждый объект
		for _, property := range properties {
			block := &domain.BlockedDate{
				PropertyID: property.ID,
				StartDate:  req.StartDate,
				EndDate:    req.EndDate,
				Reason:     req.Reason,
			}

			saved, err := uc.blockedDateRepo.Create(txCtx, block)
			if err != nil {
				uc.logger.Error("CreateBlockedDate: failed to create block for property id=%d: %v",
					property.ID, err)
				return fmt.Errorf("%w: failed to create blocked date: %v", ErrInternal, err)
			}

			created = append(created, createdBlock{block: saved, propertyName: property.Name})
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBlockedDate: successfully created %d block(s)", len(created))

	// Конвертируем в response
	resp := &Response{BlockedDates: make([]BlockedDateData, 0, len(created))}
	for _, c := range created {
		resp.BlockedDates = append(resp.BlockedDates, BlockedDateData{
			ID:           c.block.ID,
			PropertyID:   c.block.PropertyID,
			PropertyName: c.propertyName,
			StartDate:    c.block.StartDate,
			EndDate:      c.block.EndDate,
			Reason:       c.block.Reason,
			CreatedAt:    c.block.CreatedAt,
			UpdatedAt:    c.block.UpdatedAt,
		})
	}

	return resp, nil
}

// createdBlock пара "блокировка + имя объекта" для сборки ответа
type createdBlock struct {
	block        *domain.BlockedDate
	propertyName string
}
