package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/emkoumo/bookingapp/pkg/types"
)

// NightPrice is one line of a price breakdown: the rate charged for one night.
type NightPrice struct {
	Date  types.Date
	Price float64
}

// PriceQuote is the result of pricing a stay: every night resolved against
// a covering price range.
type PriceQuote struct {
	TotalPrice  float64
	NightsCount int
	Breakdown   []NightPrice // ordered by date, ascending
}

// MissingPricesError reports every night of a stay that no price range
// covers. Callers must refuse the whole operation; partial pricing is never
// accepted implicitly.
type MissingPricesError struct {
	MissingDates []types.Date
}

// Error implements the error interface.
func (e *MissingPricesError) Error() string {
	dates := make([]string, len(e.MissingDates))
	for i, d := range e.MissingDates {
		dates[i] = d.String()
	}
	return fmt.Sprintf("no price configured for dates: %s", strings.Join(dates, ", "))
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AggregateNightlyPrices prices every night of the half-open stay
// [checkIn, checkOut) against the property's closed price ranges.
//
// Each night's rate is rounded to 2 decimals before summing and the final
// total is rounded again, so the preview and the persisted total can never
// drift apart. When any night has no covering range the function returns a
// *MissingPricesError listing every uncovered date, not just the first.
func AggregateNightlyPrices(checkIn, checkOut types.Date, ranges []*PriceRange) (*PriceQuote, error) {
	nights := NightsOf(checkIn, checkOut)

	breakdown := make([]NightPrice, 0, len(nights))
	missing := make([]types.Date, 0)
	total := 0.0

	for _, night := range nights {
		rate, ok := resolveNight(night, ranges)
		if !ok {
			missing = append(missing, night)
			continue
		}
		price := Round2(rate)
		breakdown = append(breakdown, NightPrice{Date: night, Price: price})
		total += price
	}

	if len(missing) > 0 {
		return nil, &MissingPricesError{MissingDates: missing}
	}

	return &PriceQuote{
		TotalPrice:  Round2(total),
		NightsCount: len(nights),
		Breakdown:   breakdown,
	}, nil
}

// AllocateAdvance splits one combined advance payment proportionally across
// properties: advance * (propertyPrice / totalAllProperties), rounded to 2
// decimals. Returns 0 when the combined total is not positive.
func AllocateAdvance(advance, propertyPrice, totalAllProperties float64) float64 {
	if totalAllProperties <= 0 {
		return 0
	}
	return Round2(advance * (propertyPrice / totalAllProperties))
}

func resolveNight(night types.Date, ranges []*PriceRange) (float64, bool) {
	for _, pr := range ranges {
		if pr.Covers(night) {
			return pr.PricePerNight, true
		}
	}
	return 0, false
}
