package domain

import "github.com/emkoumo/bookingapp/pkg/types"

// Interval arithmetic for day-granular ranges.
//
// Two interval semantics coexist in this system and must never be mixed up:
// bookings occupy the half-open interval [CheckIn, CheckOut), while blocked
// dates and price ranges occupy the closed interval [From, To]. They get
// separate, explicitly named comparison functions instead of one generic
// overlap helper.

// OverlapsHalfOpen reports whether two half-open intervals [aStart, aEnd)
// and [bStart, bEnd) share at least one night.
//
// The test is aStart < bEnd && aEnd > bStart, so an interval starting
// exactly where the other ends does not overlap: same-day turnover between
// two stays is allowed by construction.
func OverlapsHalfOpen(aStart, aEnd, bStart, bEnd types.Date) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// OverlapsClosed reports whether two closed intervals [aFrom, aTo] and
// [bFrom, bTo] share at least one day. The test is aFrom <= bTo && aTo >= bFrom.
func OverlapsClosed(aFrom, aTo, bFrom, bTo types.Date) bool {
	return !aFrom.After(bTo) && !aTo.Before(bFrom)
}

// NightsOf returns every billable night of a stay: each calendar date from
// checkIn up to but excluding checkOut, ascending. Returns an empty slice
// when checkIn is not before checkOut.
func NightsOf(checkIn, checkOut types.Date) []types.Date {
	if !checkIn.Before(checkOut) {
		return []types.Date{}
	}
	nights := make([]types.Date, 0, checkIn.DaysUntil(checkOut))
	for night := checkIn; night.Before(checkOut); night = night.AddDays(1) {
		nights = append(nights, night)
	}
	return nights
}

// SameDayTurnover reports whether a candidate stay starts on the calendar
// day an existing stay ends. Turnover days are permitted for bookings: the
// checkout day of one stay is a valid check-in day for the next.
func SameDayTurnover(candidateStart, otherEnd types.Date) bool {
	return candidateStart.Equal(otherEnd)
}
