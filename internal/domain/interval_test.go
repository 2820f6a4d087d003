package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/emkoumo/bookingapp/pkg/types"
)

func date(day int) types.Date {
	return types.DateOf(2025, time.July, day)
}

func TestOverlapsHalfOpen(t *testing.T) {
	tests := []struct {
		name string
		a    [2]int // [start, end)
		b    [2]int
		want bool
	}{
		{"identical intervals", [2]int{1, 5}, [2]int{1, 5}, true},
		{"partial overlap", [2]int{1, 5}, [2]int{4, 8}, true},
		{"contained", [2]int{1, 10}, [2]int{3, 5}, true},
		{"same-day turnover: a ends where b starts", [2]int{1, 5}, [2]int{5, 8}, false},
		{"same-day turnover: b ends where a starts", [2]int{5, 8}, [2]int{1, 5}, false},
		{"disjoint", [2]int{1, 3}, [2]int{10, 12}, false},
		{"single night inside", [2]int{3, 4}, [2]int{1, 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverlapsHalfOpen(date(tt.a[0]), date(tt.a[1]), date(tt.b[0]), date(tt.b[1]))
			assert.Equal(t, tt.want, got)
			// Симметричность
			assert.Equal(t, tt.want, OverlapsHalfOpen(date(tt.b[0]), date(tt.b[1]), date(tt.a[0]), date(tt.a[1])))
		})
	}
}

func TestOverlapsClosed(t *testing.T) {
	tests := []struct {
		name string
		a    [2]int // [from, to]
		b    [2]int
		want bool
	}{
		{"identical intervals", [2]int{1, 5}, [2]int{1, 5}, true},
		{"touching edges conflict", [2]int{1, 5}, [2]int{5, 8}, true},
		{"single day vs single day", [2]int{5, 5}, [2]int{5, 5}, true},
		{"adjacent days do not overlap", [2]int{1, 4}, [2]int{5, 8}, false},
		{"disjoint", [2]int{1, 3}, [2]int{10, 12}, false},
		{"contained", [2]int{1, 10}, [2]int{3, 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverlapsClosed(date(tt.a[0]), date(tt.a[1]), date(tt.b[0]), date(tt.b[1]))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, OverlapsClosed(date(tt.b[0]), date(tt.b[1]), date(tt.a[0]), date(tt.a[1])))
		})
	}
}

func TestNightsOf(t *testing.T) {
	nights := NightsOf(date(1), date(4))
	assert.Len(t, nights, 3)
	assert.Equal(t, "2025-07-01", nights[0].String())
	assert.Equal(t, "2025-07-03", nights[2].String())

	// День выезда не является ночью проживания
	for _, n := range nights {
		assert.False(t, n.Equal(date(4)))
	}

	assert.Empty(t, NightsOf(date(4), date(4)))
	assert.Empty(t, NightsOf(date(5), date(4)))
}

func TestSameDayTurnover(t *testing.T) {
	assert.True(t, SameDayTurnover(date(5), date(5)))
	assert.False(t, SameDayTurnover(date(5), date(6)))
}
