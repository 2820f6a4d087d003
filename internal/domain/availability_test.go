package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emkoumo/bookingapp/pkg/ptr"
)

func activeBooking(id int64, checkIn, checkOut int) *Booking {
	return &Booking{
		ID:       id,
		CheckIn:  date(checkIn),
		CheckOut: date(checkOut),
		Status:   StatusActive,
	}
}

func TestFindBookingConflicts(t *testing.T) {
	bookings := []*Booking{
		activeBooking(1, 1, 5),
		activeBooking(2, 10, 15),
		{ID: 3, CheckIn: date(6), CheckOut: date(9), Status: StatusCancelled},
	}

	t.Run("overlapping stay conflicts", func(t *testing.T) {
		conflicts := FindBookingConflicts(date(4), date(8), bookings, nil)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, int64(1), conflicts[0].ID)
	})

	t.Run("cancelled bookings never conflict", func(t *testing.T) {
		conflicts := FindBookingConflicts(date(6), date(9), bookings, nil)
		assert.Empty(t, conflicts)
	})

	t.Run("same-day turnover allowed", func(t *testing.T) {
		conflicts := FindBookingConflicts(date(5), date(10), bookings, nil)
		assert.Empty(t, conflicts)
	})

	t.Run("excludeID skips the booking being edited", func(t *testing.T) {
		conflicts := FindBookingConflicts(date(2), date(4), bookings, ptr.Ptr(int64(1)))
		assert.Empty(t, conflicts)
	})

	t.Run("multiple conflicts are all returned", func(t *testing.T) {
		conflicts := FindBookingConflicts(date(3), date(12), bookings, nil)
		assert.Len(t, conflicts, 2)
	})
}

func TestFindBlockConflictsWithBookings(t *testing.T) {
	bookings := []*Booking{
		activeBooking(1, 1, 5),
		{ID: 2, CheckIn: date(10), CheckOut: date(12), Status: StatusCancelled},
	}

	t.Run("block touching checkout day conflicts", func(t *testing.T) {
		// Для блокировок послаблений на день выезда нет
		conflicts := FindBlockConflictsWithBookings(date(5), date(7), bookings)
		assert.Len(t, conflicts, 1)
	})

	t.Run("block after the stay does not conflict", func(t *testing.T) {
		conflicts := FindBlockConflictsWithBookings(date(6), date(8), bookings)
		assert.Empty(t, conflicts)
	})

	t.Run("cancelled bookings ignored", func(t *testing.T) {
		conflicts := FindBlockConflictsWithBookings(date(10), date(11), bookings)
		assert.Empty(t, conflicts)
	})
}

func TestFindBlockConflictsWithBlocks(t *testing.T) {
	blocks := []*BlockedDate{
		{ID: 1, StartDate: date(1), EndDate: date(5)},
		{ID: 2, StartDate: date(10), EndDate: date(10)},
	}

	t.Run("touching edge conflicts", func(t *testing.T) {
		conflicts := FindBlockConflictsWithBlocks(date(5), date(7), blocks, nil)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, int64(1), conflicts[0].ID)
	})

	t.Run("single-day block conflicts with itself unless excluded", func(t *testing.T) {
		conflicts := FindBlockConflictsWithBlocks(date(10), date(10), blocks, nil)
		assert.Len(t, conflicts, 1)

		conflicts = FindBlockConflictsWithBlocks(date(10), date(10), blocks, ptr.Ptr(int64(2)))
		assert.Empty(t, conflicts)
	})
}

func TestFindPriceRangeOverlaps(t *testing.T) {
	ranges := []*PriceRange{
		{ID: 1, DateFrom: date(1), DateTo: date(10), PricePerNight: 100},
		{ID: 2, DateFrom: date(15), DateTo: date(20), PricePerNight: 120},
	}

	t.Run("shared boundary day overlaps", func(t *testing.T) {
		overlaps := FindPriceRangeOverlaps(date(10), date(14), ranges, nil)
		assert.Len(t, overlaps, 1)
		assert.Equal(t, int64(1), overlaps[0].ID)
	})

	t.Run("gap between ranges is free", func(t *testing.T) {
		overlaps := FindPriceRangeOverlaps(date(11), date(14), ranges, nil)
		assert.Empty(t, overlaps)
	})

	t.Run("editing a range skips itself", func(t *testing.T) {
		overlaps := FindPriceRangeOverlaps(date(1), date(10), ranges, ptr.Ptr(int64(1)))
		assert.Empty(t, overlaps)
	})
}

func TestBlockedDateDays(t *testing.T) {
	blk := &BlockedDate{StartDate: date(3), EndDate: date(5)}
	days := blk.Days()
	assert.Len(t, days, 3)
	assert.Equal(t, "2025-07-03", days[0].String())
	assert.Equal(t, "2025-07-05", days[2].String())

	single := &BlockedDate{StartDate: date(7), EndDate: date(7)}
	assert.Len(t, single.Days(), 1)
}

func TestBookingLifecycle(t *testing.T) {
	b := activeBooking(1, 1, 5)
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.CanBeUpdated())
	assert.Equal(t, 4, b.Nights())

	b.Status = StatusCancelled
	assert.True(t, b.IsCancelled())
	assert.False(t, b.CanBeCancelled())
	assert.False(t, b.CanBeUpdated())
}
