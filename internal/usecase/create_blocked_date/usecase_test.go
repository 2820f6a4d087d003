package create_blocked_date

import (
	"context"
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
	active map[int64][]*domain.Booking
}

func (f *fakeBookingRepo) ListActive(_ context.Context, propertyID int64, _ *int64) ([]*domain.Booking, error) {
	return f.active[propertyID], nil
}

type fakeBlockedDateRepo struct {
	existing map[int64][]*domain.BlockedDate
	nextID   int64
	saved    []*domain.BlockedDate
}

func (f *fakeBlockedDateRepo) Create(_ context.Context, block *domain.BlockedDate) (*domain.BlockedDate, error) {
	f.nextID++
	saved := *block
	saved.ID = f.nextID
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt
	f.saved = append(f.saved, &saved)
	return &saved, nil
}

func (f *fakeBlockedDateRepo) ListByProperty(_ context.Context, propertyID int64, _ *int64) ([]*domain.BlockedDate, error) {
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

func TestCreateBlockedDate_Success(t *testing.T) {
	blocks := &fakeBlockedDateRepo{existing: map[int64][]*domain.BlockedDate{}}
	uc := NewUseCase(&fakeBookingRepo{active: map[int64][]*domain.Booking{}}, blocks, defaultProps(), fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyIDs: []int64{1, 2},
		StartDate:   day(10),
		EndDate:     day(12),
		Reason:      ptr.Ptr("renovation"),
	})
	require.NoError(t, err)
	require.Len(t, resp.BlockedDates, 2)
	assert.Equal(t, "Sea View Apartment", resp.BlockedDates[0].PropertyName)
	assert.Equal(t, "renovation", *resp.BlockedDates[0].Reason)
}

func TestCreateBlockedDate_SingleDayAllowed(t *testing.T) {
	blocks := &fakeBlockedDateRepo{existing: map[int64][]*domain.BlockedDate{}}
	uc := NewUseCase(&fakeBookingRepo{active: map[int64][]*domain.Booking{}}, blocks, defaultProps(), fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyIDs: []int64{1},
		StartDate:   day(10),
		EndDate:     day(10),
	})
	require.NoError(t, err)
	assert.Len(t, resp.BlockedDates, 1)
}

func TestCreateBlockedDate_ConflictWithBookingCheckoutDay(t *testing.T) {
	// Бронь заканчивается 10-го; блокировка с 10-го конфликтует:
	// для блокировок исключения на день выезда нет
	bookings := &fakeBookingRepo{active: map[int64][]*domain.Booking{
		1: {{ID: 5, PropertyID: 1, CheckIn: day(5), CheckOut: day(10), Status: domain.StatusActive}},
	}}
	blocks := &fakeBlockedDateRepo{existing: map[int64][]*domain.BlockedDate{}}
	uc := NewUseCase(bookings, blocks, defaultProps(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PropertyIDs: []int64{1},
		StartDate:   day(10),
		EndDate:     day(12),
	})
	require.ErrorIs(t, err, ErrDateConflict)
	assert.Empty(t, blocks.saved)
}

func TestCreateBlockedDate_ConflictWithExistingBlock(t *testing.T) {
	blocks := &fakeBlockedDateRepo{existing: map[int64][]*domain.BlockedDate{
		2: {{ID: 7, PropertyID: 2, StartDate: day(11), EndDate: day(15)}},
	}}
	uc := NewUseCase(&fakeBookingRepo{active: map[int64][]*domain.Booking{}}, blocks, defaultProps(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PropertyIDs: []int64{1, 2},
		StartDate:   day(10),
		EndDate:     day(12),
	})

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, []string{"Garden Studio"}, conflictErr.PropertyNames)
	// Всё или ничего: даже на свободном объекте ничего не создано
	assert.Empty(t, blocks.saved)
}

func TestCreateBlockedDate_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeBlockedDateRepo{}, defaultProps(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PropertyIDs: nil, StartDate: day(1), EndDate: day(2)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PropertyIDs: []int64{1}, StartDate: day(5), EndDate: day(2)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateBlockedDate_PropertyNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{active: map[int64][]*domain.Booking{}}, &fakeBlockedDateRepo{existing: map[int64][]*domain.BlockedDate{}}, defaultProps(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PropertyIDs: []int64{99},
		StartDate:   day(1),
		EndDate:     day(2),
	})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}
