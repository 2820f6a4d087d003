package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateNightlyPrices(t *testing.T) {
	ranges := []*PriceRange{
		{ID: 1, DateFrom: date(1), DateTo: date(3), PricePerNight: 100},
		{ID: 2, DateFrom: date(4), DateTo: date(31), PricePerNight: 120},
	}

	t.Run("stay spanning two seasons", func(t *testing.T) {
		// 5 ночей: 3 по 100 + 2 по 120
		quote, err := AggregateNightlyPrices(date(1), date(6), ranges)
		require.NoError(t, err)

		assert.Equal(t, 540.00, quote.TotalPrice)
		assert.Equal(t, 5, quote.NightsCount)
		require.Len(t, quote.Breakdown, 5)
		assert.Equal(t, 100.00, quote.Breakdown[0].Price)
		assert.Equal(t, 120.00, quote.Breakdown[4].Price)
		assert.Equal(t, "2025-07-01", quote.Breakdown[0].Date.String())
		assert.Equal(t, "2025-07-05", quote.Breakdown[4].Date.String())
	})

	t.Run("checkout day is not billed", func(t *testing.T) {
		quote, err := AggregateNightlyPrices(date(1), date(2), ranges)
		require.NoError(t, err)
		assert.Equal(t, 100.00, quote.TotalPrice)
		assert.Equal(t, 1, quote.NightsCount)
	})

	t.Run("every uncovered night is reported", func(t *testing.T) {
		gappy := []*PriceRange{
			{ID: 1, DateFrom: date(1), DateTo: date(2), PricePerNight: 100},
			{ID: 2, DateFrom: date(5), DateTo: date(10), PricePerNight: 120},
		}

		_, err := AggregateNightlyPrices(date(1), date(7), gappy)
		var missingErr *MissingPricesError
		require.ErrorAs(t, err, &missingErr)
		require.Len(t, missingErr.MissingDates, 2)
		assert.Equal(t, "2025-07-03", missingErr.MissingDates[0].String())
		assert.Equal(t, "2025-07-04", missingErr.MissingDates[1].String())
	})

	t.Run("no ranges at all", func(t *testing.T) {
		_, err := AggregateNightlyPrices(date(1), date(4), nil)
		var missingErr *MissingPricesError
		require.ErrorAs(t, err, &missingErr)
		assert.Len(t, missingErr.MissingDates, 3)
	})

	t.Run("fractional rates round per night", func(t *testing.T) {
		fractional := []*PriceRange{
			{ID: 1, DateFrom: date(1), DateTo: date(31), PricePerNight: 99.995},
		}
		quote, err := AggregateNightlyPrices(date(1), date(3), fractional)
		require.NoError(t, err)
		// Каждая ночь округляется до суммирования: 100.00 * 2
		assert.Equal(t, 200.00, quote.TotalPrice)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 100.00, Round2(99.995))
	assert.Equal(t, 99.99, Round2(99.994))
	assert.Equal(t, 0.00, Round2(0))
	assert.Equal(t, -10.56, Round2(-10.555))
}

func TestAllocateAdvance(t *testing.T) {
	t.Run("proportional split", func(t *testing.T) {
		// Два объекта по 540, аванс 300 делится поровну
		assert.Equal(t, 150.00, AllocateAdvance(300, 540, 1080))
	})

	t.Run("single property takes the whole advance", func(t *testing.T) {
		assert.Equal(t, 300.00, AllocateAdvance(300, 540, 540))
	})

	t.Run("zero total yields zero advance", func(t *testing.T) {
		assert.Equal(t, 0.00, AllocateAdvance(300, 0, 0))
	})
}

func TestPriceRangeCovers(t *testing.T) {
	pr := &PriceRange{DateFrom: date(5), DateTo: date(10), PricePerNight: 100}

	assert.True(t, pr.Covers(date(5)))
	assert.True(t, pr.Covers(date(10)))
	assert.False(t, pr.Covers(date(4)))
	assert.False(t, pr.Covers(date(11)))
}
