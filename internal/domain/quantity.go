package domain

import (
	"math"
	"time"
)

// TripDays returns the inclusive number of days between start and end:
// a trip from the 1st to the 3rd spans 3 days. The count is floored at 1,
// so equal or (defensively) inverted dates still yield a one-day trip.
// Time-of-day components are ignored.
func TripDays(start, end time.Time) int {
	s := truncateToDay(start)
	e := truncateToDay(end)
	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// DeriveQuantity computes the required quantity for a template item over the
// given trip dates.
//
// A present quantity-per-day factor wins: quantity = round(days * factor),
// rounded half away from zero. Otherwise the fixed quantity applies. Either
// way the result is floored at 1 so every generated item is meaningful, and
// an absent or unusable spec falls back to 1 — this never fails the caller.
func DeriveQuantity(item TemplateItem, start, end time.Time) int {
	if item.QuantityPerDay != nil {
		return atLeastOne(int(math.Round(float64(TripDays(start, end)) * *item.QuantityPerDay)))
	}
	if item.Quantity != nil {
		return atLeastOne(*item.Quantity)
	}
	return 1
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// truncateToDay drops the time-of-day portion, keeping the calendar date in UTC.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
