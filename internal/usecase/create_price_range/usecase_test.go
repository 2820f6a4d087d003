package create_price_range

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emkoumo/bookingapp/internal/domain"
	businessRepo "github.com/emkoumo/bookingapp/internal/infra/storage/business"
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

type fakePriceRangeRepo struct {
	existing map[int64][]*domain.PriceRange
	nextID   int64
	saved    []*domain.PriceRange
}

func (f *fakePriceRangeRepo) Create(_ context.Context, pr *domain.PriceRange) (*domain.PriceRange, error) {
	f.nextID++
	saved := *pr
	saved.ID = f.nextID
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt
	f.saved = append(f.saved, &saved)
	return &saved, nil
}

func (f *fakePriceRangeRepo) ListByProperty(_ context.Context, propertyID int64) ([]*domain.PriceRange, error) {
	return f.existing[propertyID], nil
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

func defaultProps() *fakePropertyRepo {
	return &fakePropertyRepo{properties: map[int64]*domain.Property{
		1: {ID: 1, BusinessID: 1, Name: "Sea View Apartment"},
		2: {ID: 2, BusinessID: 1, Name: "Garden Studio"},
	}}
}

func TestCreatePriceRange_Success(t *testing.T) {
	prices := &fakePriceRangeRepo{existing: map[int64][]*domain.PriceRange{}}
	uc := NewUseCase(prices, defaultProps(), fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyIDs:   []int64{1, 2},
		DateFrom:      day(1),
		DateTo:        day(15),
		PricePerNight: 99.999,
	})
	require.NoError(t, err)
	require.Len(t, resp.PriceRanges, 2)
	// Цена сохраняется округлённой до копеек
	assert.Equal(t, 100.00, resp.PriceRanges[0].PricePerNight)
	assert.Equal(t, "Garden Studio", resp.PriceRanges[1].PropertyName)
}

func TestCreatePriceRange_OverlapRejected(t *testing.T) {
	prices := &fakePriceRangeRepo{existing: map[int64][]*domain.PriceRange{
		1: {{ID: 3, PropertyID: 1, DateFrom: day(10), DateTo: day(20), PricePerNight: 80}},
	}}
	uc := NewUseCase(prices, defaultProps(), fakeTxManager{}, nopLogger{})

	// Общий граничный день (10-е) - уже пересечение
	_, err := uc.Execute(context.Background(), &Request{
		PropertyIDs:   []int64{1},
		DateFrom:      day(1),
		DateTo:        day(10),
		PricePerNight: 100,
	})

	require.ErrorIs(t, err, ErrRangeOverlap)
	var overlapErr *OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, []string{"Sea View Apartment"}, overlapErr.PropertyNames)
	assert.Empty(t, prices.saved)
}

func TestCreatePriceRange_AdjacentRangesAllowed(t *testing.T) {
	prices := &fakePriceRangeRepo{existing: map[int64][]*domain.PriceRange{
		1: {{ID: 3, PropertyID: 1, DateFrom: day(10), DateTo: day(20), PricePerNight: 80}},
	}}
	uc := NewUseCase(prices, defaultProps(), fakeTxManager{}, nopLogger{})

	// Заканчивается 9-го, существующий начинается 10-го - смежность допустима
	resp, err := uc.Execute(context.Background(), &Request{
		PropertyIDs:   []int64{1},
		DateFrom:      day(1),
		DateTo:        day(9),
		PricePerNight: 100,
	})
	require.NoError(t, err)
	assert.Len(t, resp.PriceRanges, 1)
}

func TestCreatePriceRange_Validation(t *testing.T) {
	uc := NewUseCase(&fakePriceRangeRepo{}, defaultProps(), fakeTxManager{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"no properties", &Request{DateFrom: day(1), DateTo: day(5), PricePerNight: 100}},
		// Однодневный диапазон запрещён - в отличие от блокировок
		{"dateFrom equals dateTo", &Request{PropertyIDs: []int64{1}, DateFrom: day(5), DateTo: day(5), PricePerNight: 100}},
		{"dateFrom after dateTo", &Request{PropertyIDs: []int64{1}, DateFrom: day(6), DateTo: day(5), PricePerNight: 100}},
		{"zero price", &Request{PropertyIDs: []int64{1}, DateFrom: day(1), DateTo: day(5), PricePerNight: 0}},
		{"negative price", &Request{PropertyIDs: []int64{1}, DateFrom: day(1), DateTo: day(5), PricePerNight: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreatePriceRange_PropertyNotFound(t *testing.T) {
	uc := NewUseCase(&fakePriceRangeRepo{existing: map[int64][]*domain.PriceRange{}}, defaultProps(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PropertyIDs:   []int64{99},
		DateFrom:      day(1),
		DateTo:        day(5),
		PricePerNight: 100,
	})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}
