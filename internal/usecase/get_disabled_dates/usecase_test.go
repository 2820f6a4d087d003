package get_disabled_dates

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

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListActive(context.Context, int64, *int64) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeBlockedDateRepo struct {
	blocks []*domain.BlockedDate
}

func (f *fakeBlockedDateRepo) ListByProperty(context.Context, int64, *int64) ([]*domain.BlockedDate, error) {
	return f.blocks, nil
}

type fakePropertyRepo struct {
	missing bool
}

func (f *fakePropertyRepo) GetProperty(_ context.Context, id int64) (*domain.Property, error) {
	if f.missing {
		return nil, businessRepo.ErrPropertyNotFound
	}
	return &domain.Property{ID: id, BusinessID: 1, Name: "Garden Studio"}, nil
}

func day(d int) types.Date {
	return types.DateOf(2025, time.July, d)
}

func strDates(dates []types.Date) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}

func TestGetDisabledDates_UnionOfBookingsAndBlocks(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CheckIn: day(1), CheckOut: day(4), Status: domain.StatusActive},
	}}
	blocks := &fakeBlockedDateRepo{blocks: []*domain.BlockedDate{
		// Пересекается с бронью по 3-му числу - дубликатов быть не должно
		{ID: 1, StartDate: day(3), EndDate: day(5)},
	}}
	uc := NewUseCase(bookings, blocks, &fakePropertyRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PropertyID: 1})
	require.NoError(t, err)

	// Ночи брони: 1,2,3; блокировка: 3,4,5. День выезда (4-е) занят блокировкой.
	assert.Equal(t, []string{"2025-07-01", "2025-07-02", "2025-07-03", "2025-07-04", "2025-07-05"},
		strDates(resp.DisabledDates))
}

func TestGetDisabledDates_CheckoutDayStaysFree(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CheckIn: day(1), CheckOut: day(4), Status: domain.StatusActive},
	}}
	uc := NewUseCase(bookings, &fakeBlockedDateRepo{}, &fakePropertyRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PropertyID: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-07-01", "2025-07-02", "2025-07-03"}, strDates(resp.DisabledDates))
}

func TestGetDisabledDates_WindowFilter(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CheckIn: day(1), CheckOut: day(10), Status: domain.StatusActive},
	}}
	uc := NewUseCase(bookings, &fakeBlockedDateRepo{}, &fakePropertyRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		From:       ptr.Ptr(day(3)),
		To:         ptr.Ptr(day(5)),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-07-03", "2025-07-04", "2025-07-05"}, strDates(resp.DisabledDates))
}

func TestGetDisabledDates_Empty(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeBlockedDateRepo{}, &fakePropertyRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PropertyID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.DisabledDates)
}

func TestGetDisabledDates_Errors(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeBlockedDateRepo{}, &fakePropertyRepo{missing: true}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PropertyID: 1})
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		From:       ptr.Ptr(day(10)),
		To:         ptr.Ptr(day(5)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
