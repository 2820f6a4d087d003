package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emkoumo/bookingapp/internal/domain"
	bookingRepo "github.com/emkoumo/bookingapp/internal/infra/storage/booking"
	"github.com/emkoumo/bookingapp/pkg/ptr"
	"github.com/emkoumo/bookingapp/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	byID   map[int64]*domain.Booking
	active []*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) ListActive(_ context.Context, _ int64, excludeID *int64) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(f.active))
	for _, b := range f.active {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	saved := *booking
	saved.UpdatedAt = time.Now()
	f.byID[saved.ID] = &saved
	return &saved, nil
}

type fakePriceRangeRepo struct {
	ranges []*domain.PriceRange
}

func (f *fakePriceRangeRepo) ListByProperty(context.Context, int64) ([]*domain.PriceRange, error) {
	return f.ranges, nil
}

type fakePropertyRepo struct{}

func (fakePropertyRepo) GetProperty(_ context.Context, id int64) (*domain.Property, error) {
	return &domain.Property{ID: id, BusinessID: 1, Name: "Sea View Apartment"}, nil
}

func day(d int) types.Date {
	return types.DateOf(2025, time.July, d)
}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:           1,
		PropertyID:   1,
		CustomerName: "Maria Papadopoulou",
		CheckIn:      day(1),
		CheckOut:     day(6),
		Status:       domain.StatusActive,
		TotalPrice:   540,
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func defaultPrices() *fakePriceRangeRepo {
	return &fakePriceRangeRepo{ranges: []*domain.PriceRange{
		{ID: 1, PropertyID: 1, DateFrom: day(1), DateTo: day(31), PricePerNight: 100},
	}}
}

func validRequest() *Request {
	return &Request{
		BookingID:    1,
		CustomerName: "Maria Papadopoulou",
		CheckIn:      day(2),
		CheckOut:     day(5),
	}
}

func TestUpdateBooking_RepriceOnDateChange(t *testing.T) {
	current := existingBooking()
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: current}, active: []*domain.Booking{current}}
	uc := NewUseCase(repo, defaultPrices(), fakePropertyRepo{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.AdvancePayment = 100

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 300.00, resp.TotalPrice) // 3 ночи по 100
	assert.Equal(t, 3, resp.NightsCount)
	assert.Equal(t, 100.00, resp.AdvancePayment)
	assert.Equal(t, 200.00, resp.RemainingBalance)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Equal(t, "Sea View Apartment", resp.PropertyName)
	// CreatedAt сохраняется от исходного бронирования
	assert.Equal(t, current.CreatedAt, resp.CreatedAt)
}

func TestUpdateBooking_OwnIntervalIsNotAConflict(t *testing.T) {
	current := existingBooking()
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: current}, active: []*domain.Booking{current}}
	uc := NewUseCase(repo, defaultPrices(), fakePropertyRepo{}, fakeTxManager{}, nopLogger{})

	// Сдвиг внутри собственного интервала
	req := validRequest()
	req.CheckIn = day(1)
	req.CheckOut = day(6)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUpdateBooking_ConflictWithAnotherBooking(t *testing.T) {
	current := existingBooking()
	other := &domain.Booking{ID: 2, PropertyID: 1, CheckIn: day(10), CheckOut: day(15), Status: domain.StatusActive}
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: current}, active: []*domain.Booking{current, other}}
	uc := NewUseCase(repo, defaultPrices(), fakePropertyRepo{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.CheckIn = day(12)
	req.CheckOut = day(18)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrBookingConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, []string{"Sea View Apartment"}, conflictErr.PropertyNames)
}

func TestUpdateBooking_CancelledBookingRejected(t *testing.T) {
	current := existingBooking()
	current.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: current}}
	uc := NewUseCase(repo, defaultPrices(), fakePropertyRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingCancelled)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{}}
	uc := NewUseCase(repo, defaultPrices(), fakePropertyRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateBooking_ManualOverrides(t *testing.T) {
	current := existingBooking()
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: current}, active: []*domain.Booking{current}}
	// Диапазонов нет: с ручной ценой пересчёт не нужен
	uc := NewUseCase(repo, &fakePriceRangeRepo{}, fakePropertyRepo{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.TotalPrice = ptr.Ptr(450.0)
	req.AdvancePayment = 100
	req.RemainingBalance = ptr.Ptr(200.0)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 450.00, resp.TotalPrice)
	// Переопределение остатка имеет приоритет над total-advance
	assert.Equal(t, 200.00, resp.RemainingBalance)
}

func TestUpdateBooking_MissingPrices(t *testing.T) {
	current := existingBooking()
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: current}, active: []*domain.Booking{current}}
	uc := NewUseCase(repo, &fakePriceRangeRepo{}, fakePropertyRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	var missingErr *domain.MissingPricesError
	require.ErrorAs(t, err, &missingErr)
	assert.Len(t, missingErr.MissingDates, 3)
}
