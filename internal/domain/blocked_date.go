package domain

import (
	"time"

	"github.com/emkoumo/bookingapp/pkg/types"
)

// BlockedDate marks a property as unavailable over the closed interval
// [StartDate, EndDate]: both edge days are occupied, unlike a booking's
// half-open stay interval.
type BlockedDate struct {
	ID         int64
	PropertyID int64
	StartDate  types.Date
	EndDate    types.Date // inclusive
	Reason     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers returns true if the given day falls inside the blocked range.
func (b *BlockedDate) Covers(d types.Date) bool {
	return !d.Before(b.StartDate) && !d.After(b.EndDate)
}

// Days returns every calendar day of the blocked range, ascending.
func (b *BlockedDate) Days() []types.Date {
	if b.EndDate.Before(b.StartDate) {
		return nil
	}
	days := make([]types.Date, 0, b.StartDate.DaysUntil(b.EndDate)+1)
	for d := b.StartDate; !d.After(b.EndDate); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
