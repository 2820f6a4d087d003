package get_disabled_dates

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/emkoumo/bookingapp/internal/domain"
	businessRepo "github.com/emkoumo/bookingapp/internal/infra/storage/business"
	"github.com/emkoumo/bookingapp/pkg/types"
)

// UseCase use case для получения недоступных дат календаря.
// Объединяет ночи активных бронирований (день выезда остаётся доступным)
// и дни блокировок (включительно с обеих сторон).
type UseCase struct {
	bookingRepo     BookingRepository
	blockedDateRepo BlockedDateRepository
	propertyRepo    PropertyRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedDateRepo BlockedDateRepository,
	propertyRepo PropertyRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		blockedDateRepo: blockedDateRepo,
		propertyRepo:    propertyRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения недоступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDisabledDates: property=%d", req.PropertyID)

	// 1. Валидация входных данных
	if req.PropertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyId must be positive", ErrInvalidInput)
	}
	if req.From != nil && req.To != nil && req.From.After(*req.To) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	// 2. Проверяем существование объекта размещения
	if _, err := uc.propertyRepo.GetProperty(ctx, req.PropertyID); err != nil {
		if errors.Is(err, businessRepo.ErrPropertyNotFound) {
			uc.logger.Warn("GetDisabledDates: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetDisabledDates: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 3. Собираем ночи активных бронирований
	bookings, err := uc.bookingRepo.ListActive(ctx, req.PropertyID, nil)
	if err != nil {
		uc.logger.Error("GetDisabledDates: failed to list active bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
	}

	seen := make(map[types.Date]struct{})
	for _, b := range bookings {
		for _, night := range domain.NightsOf(b.CheckIn, b.CheckOut) {
			seen[night] = struct{}{}
		}
	}

	// 4. Добавляем дни блокировок
	blocks, err := uc.blockedDateRepo.ListByProperty(ctx, req.PropertyID, nil)
	if err != nil {
		uc.logger.Error("GetDisabledDates: failed to list blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked dates: %v", ErrInternal, err)
	}
	for _, blk := range blocks {
		for _, day := range blk.Days() {
			seen[day] = struct{}{}
		}
	}

	// 5. Применяем окно, сортируем
	dates := make([]types.Date, 0, len(seen))
	for d := range seen {
		if req.From != nil && d.Before(*req.From) {
			continue
		}
		if req.To != nil && d.After(*req.To) {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	uc.logger.Info("GetDisabledDates: property=%d, %d disabled dates", req.PropertyID, len(dates))

	return &Response{DisabledDates: dates}, nil
}
