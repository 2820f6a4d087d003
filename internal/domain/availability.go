package domain

import "github.com/emkoumo/bookingapp/pkg/types"

// Availability checks are pure functions over booking and block sets the
// caller has already fetched. Use cases fetch inside their transaction
// (with row locks) and pass the rows in, so the checks themselves stay
// deterministic and side-effect free.

// FindBookingConflicts returns every active booking whose half-open stay
// interval overlaps the candidate interval [candStart, candEnd).
// A booking whose ID equals excludeID is skipped, which lets an update
// check a booking against the property's other bookings only.
//
// Same-day turnover needs no special casing here: the half-open test
// already treats a stay ending on candStart, or starting on candEnd,
// as non-conflicting.
func FindBookingConflicts(candStart, candEnd types.Date, bookings []*Booking, excludeID *int64) []*Booking {
	conflicts := make([]*Booking, 0)

	for _, b := range bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if OverlapsHalfOpen(candStart, candEnd, b.CheckIn, b.CheckOut) {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts
}

// FindBlockConflictsWithBookings returns every active booking that touches
// the candidate closed interval [from, to]. Blocked ranges use the closed
// comparison against the full stay span, with no turnover exemption: a
// block's edge days are exact, inclusive days, so blocking a booking's
// checkout day is a conflict.
func FindBlockConflictsWithBookings(from, to types.Date, bookings []*Booking) []*Booking {
	conflicts := make([]*Booking, 0)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if OverlapsClosed(from, to, b.CheckIn, b.CheckOut) {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts
}

// FindBlockConflictsWithBlocks returns every existing blocked range that
// overlaps the candidate closed interval [from, to], skipping the record
// being edited when excludeID is given.
func FindBlockConflictsWithBlocks(from, to types.Date, blocks []*BlockedDate, excludeID *int64) []*BlockedDate {
	conflicts := make([]*BlockedDate, 0)

	for _, blk := range blocks {
		if excludeID != nil && blk.ID == *excludeID {
			continue
		}
		if OverlapsClosed(from, to, blk.StartDate, blk.EndDate) {
			conflicts = append(conflicts, blk)
		}
	}

	return conflicts
}

// FindPriceRangeOverlaps returns every existing price range overlapping the
// candidate closed interval [from, to], skipping the range being edited
// when excludeID is given. Price ranges on one property must never overlap,
// regardless of the rate.
func FindPriceRangeOverlaps(from, to types.Date, ranges []*PriceRange, excludeID *int64) []*PriceRange {
	overlaps := make([]*PriceRange, 0)

	for _, pr := range ranges {
		if excludeID != nil && pr.ID == *excludeID {
			continue
		}
		if OverlapsClosed(from, to, pr.DateFrom, pr.DateTo) {
			overlaps = append(overlaps, pr)
		}
	}

	return overlaps
}
