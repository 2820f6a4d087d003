package domain

import (
	"time"

	"github.com/emkoumo/bookingapp/pkg/types"
)

// PriceRange assigns a nightly rate to a property over the closed interval
// [DateFrom, DateTo]. Ranges on one property never overlap.
type PriceRange struct {
	ID            int64
	PropertyID    int64
	DateFrom      types.Date
	DateTo        types.Date // inclusive
	PricePerNight float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers returns true if the given night falls inside the priced range.
func (p *PriceRange) Covers(night types.Date) bool {
	return !night.Before(p.DateFrom) && !night.After(p.DateTo)
}
