package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emkoumo/bookingapp/internal/domain"
	businessRepo "github.com/emkoumo/bookingapp/internal/infra/storage/business"
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
	active map[int64][]*domain.Booking // propertyID -> активные брони
	nextID int64
	saved  []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	saved := *booking
	saved.ID = f.nextID
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt
	f.saved = append(f.saved, &saved)
	return &saved, nil
}

func (f *fakeBookingRepo) ListActive(_ context.Context, propertyID int64, _ *int64) ([]*domain.Booking, error) {
	return f.active[propertyID], nil
}

type fakePriceRangeRepo struct {
	ranges map[int64][]*domain.PriceRange
}

func (f *fakePriceRangeRepo) ListByProperty(_ context.Context, propertyID int64) ([]*domain.PriceRange, error) {
	return f.ranges[propertyID], nil
}

type fakePropertyRepo struct {
	properties map[int64]*domain.Property
}

func (f *fakePropertyRepo) GetProperty(_ context.Context, id int64) (*domain.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, businessRepo.ErrPropertyNotFound
	}
	return p, nil
}

func day(d int) types.Date {
	return types.DateOf(2025, time.July, d)
}

func newTestUseCase(bookings *fakeBookingRepo, prices *fakePriceRangeRepo, props *fakePropertyRepo) *UseCase {
	return NewUseCase(bookings, prices, props, fakeTxManager{}, nopLogger{})
}

func defaultProps() *fakePropertyRepo {
	return &fakePropertyRepo{properties: map[int64]*domain.Property{
		1: {ID: 1, BusinessID: 1, Name: "Sea View Apartment"},
		2: {ID: 2, BusinessID: 1, Name: "Garden Studio"},
	}}
}

func defaultPrices() *fakePriceRangeRepo {
	return &fakePriceRangeRepo{ranges: map[int64][]*domain.PriceRange{
		1: {
			{ID: 1, PropertyID: 1, DateFrom: day(1), DateTo: day(3), PricePerNight: 100},
			{ID: 2, PropertyID: 1, DateFrom: day(4), DateTo: day(31), PricePerNight: 120},
		},
	}}
}

func validRequest() *Request {
	return &Request{
		PropertyIDs:  []int64{1},
		CustomerName: "Maria Papadopoulou",
		CheckIn:      day(1),
		CheckOut:     day(6),
	}
}

func TestCreateBooking_Success(t *testing.T) {
	bookings := &fakeBookingRepo{active: map[int64][]*domain.Booking{}}
	uc := newTestUseCase(bookings, defaultPrices(), defaultProps())

	req := validRequest()
	req.AdvancePayment = 200

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	b := resp.Bookings[0]
	assert.Equal(t, "Sea View Apartment", b.PropertyName)
	assert.Equal(t, string(domain.StatusActive), b.Status)
	assert.Equal(t, 5, b.NightsCount)
	// 3 ночи по 100 + 2 по 120
	assert.Equal(t, 540.00, b.TotalPrice)
	assert.Equal(t, 200.00, b.AdvancePayment)
	assert.Equal(t, 340.00, b.RemainingBalance)
}

func TestCreateBooking_ManualPriceOverride(t *testing.T) {
	bookings := &fakeBookingRepo{active: map[int64][]*domain.Booking{}}
	// Ценовых диапазонов нет вообще - с ручной ценой это не ошибка
	uc := newTestUseCase(bookings, &fakePriceRangeRepo{ranges: map[int64][]*domain.PriceRange{}}, defaultProps())

	req := validRequest()
	req.TotalPrice = ptr.Ptr(999.999)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1000.00, resp.Bookings[0].TotalPrice)
}

func TestCreateBooking_MultiProperty(t *testing.T) {
	bookings := &fakeBookingRepo{active: map[int64][]*domain.Booking{}}
	uc := newTestUseCase(bookings, defaultPrices(), defaultProps())

	req := validRequest()
	req.PropertyIDs = []int64{1, 2}
	req.AdvancePayment = 300

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	// Цена считается по первому объекту и применяется к обоим,
	// аванс делится пропорционально (здесь поровну)
	for _, b := range resp.Bookings {
		assert.Equal(t, 540.00, b.TotalPrice)
		assert.Equal(t, 150.00, b.AdvancePayment)
		assert.Equal(t, 390.00, b.RemainingBalance)
	}
	assert.Equal(t, int64(1), resp.Bookings[0].PropertyID)
	assert.Equal(t, int64(2), resp.Bookings[1].PropertyID)
}

func TestCreateBooking_ConflictCollectsAllProperties(t *testing.T) {
	bookings := &fakeBookingRepo{active: map[int64][]*domain.Booking{
		1: {{ID: 10, PropertyID: 1, CheckIn: day(3), CheckOut: day(8), Status: domain.StatusActive}},
		2: {{ID: 11, PropertyID: 2, CheckIn: day(5), CheckOut: day(9), Status: domain.StatusActive}},
	}}
	uc := newTestUseCase(bookings, defaultPrices(), defaultProps())

	req := validRequest()
	req.PropertyIDs = []int64{1, 2}

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrBookingConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, []string{"Sea View Apartment", "Garden Studio"}, conflictErr.PropertyNames)
	// Ничего не создано: всё или ничего
	assert.Empty(t, bookings.saved)
}

func TestCreateBooking_SameDayTurnoverAllowed(t *testing.T) {
	bookings := &fakeBookingRepo{active: map[int64][]*domain.Booking{
		1: {{ID: 10, PropertyID: 1, CheckIn: day(25), CheckOut: day(6), Status: domain.StatusActive}},
	}}
	// Существующая бронь заканчивается 6-го - заезд 6-го разрешён
	bookings.active[1][0].CheckIn = day(1)
	uc := newTestUseCase(bookings, defaultPrices(), defaultProps())

	req := validRequest()
	req.CheckIn = day(6)
	req.CheckOut = day(9)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestCreateBooking_MissingPrices(t *testing.T) {
	bookings := &fakeBookingRepo{active: map[int64][]*domain.Booking{}}
	prices := &fakePriceRangeRepo{ranges: map[int64][]*domain.PriceRange{
		1: {{ID: 1, PropertyID: 1, DateFrom: day(1), DateTo: day(2), PricePerNight: 100}},
	}}
	uc := newTestUseCase(bookings, prices, defaultProps())

	_, err := uc.Execute(context.Background(), validRequest())

	var missingErr *domain.MissingPricesError
	require.ErrorAs(t, err, &missingErr)
	assert.Len(t, missingErr.MissingDates, 3)
	assert.Equal(t, "2025-07-03", missingErr.MissingDates[0].String())
	assert.Empty(t, bookings.saved)
}

func TestCreateBooking_PropertyNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{active: map[int64][]*domain.Booking{}}
	uc := newTestUseCase(bookings, defaultPrices(), defaultProps())

	req := validRequest()
	req.PropertyIDs = []int64{99}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestCreateBooking_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, defaultPrices(), defaultProps())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"no properties", func(r *Request) { r.PropertyIDs = nil }},
		{"duplicate properties", func(r *Request) { r.PropertyIDs = []int64{1, 1} }},
		{"non-positive property id", func(r *Request) { r.PropertyIDs = []int64{0} }},
		{"empty customer name", func(r *Request) { r.CustomerName = "  " }},
		{"check-in equals check-out", func(r *Request) { r.CheckOut = r.CheckIn }},
		{"check-in after check-out", func(r *Request) { r.CheckIn = day(10); r.CheckOut = day(5) }},
		{"negative advance", func(r *Request) { r.AdvancePayment = -1 }},
		{"negative manual price", func(r *Request) { r.TotalPrice = ptr.Ptr(-5.0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput, fmt.Sprintf("case %q", tt.name))
		})
	}
}
