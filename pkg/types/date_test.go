package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-07-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", d.String())

	_, err = ParseDate("01.07.2025")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = ParseDate("2025-13-40")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestNewDateNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	a := NewDate(time.Date(2025, 7, 1, 23, 59, 59, 0, loc))
	b := DateOf(2025, time.July, 1)

	assert.True(t, a.Equal(b))
	// Дата должна быть безопасна как ключ map
	m := map[Date]struct{}{a: {}}
	_, ok := m[b]
	assert.True(t, ok)
}

func TestDateComparisons(t *testing.T) {
	a := DateOf(2025, time.July, 1)
	b := DateOf(2025, time.July, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
}

func TestAddDaysAndDaysUntil(t *testing.T) {
	a := DateOf(2025, time.July, 1)

	assert.Equal(t, "2025-07-06", a.AddDays(5).String())
	assert.Equal(t, "2025-06-30", a.AddDays(-1).String())
	assert.Equal(t, 5, a.DaysUntil(DateOf(2025, time.July, 6)))
	assert.Equal(t, 0, a.DaysUntil(a))

	// Переход через конец месяца и года
	assert.Equal(t, "2026-01-01", DateOf(2025, time.December, 31).AddDays(1).String())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := DateOf(2025, time.July, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-07-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, d.Equal(parsed))

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &bad))
}

func TestDateIsZero(t *testing.T) {
	var zero Date
	assert.True(t, zero.IsZero())
	assert.False(t, DateOf(2025, time.July, 1).IsZero())
}
