package domain

import "math"

// Progress is a packed-count / total-count pair for a category or a whole trip.
// Construct it via CategoryDetail.Progress or TripDetail.Progress; it is always
// recomputed from current state, never stored.
type Progress struct {
	Packed int `json:"packed"`
	Total  int `json:"total"`
}

// Percent returns the packed share as a percentage rounded to two decimals.
// An empty category or trip is exactly 0.0 — never a division by zero.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 0.0
	}
	return math.Round(float64(p.Packed)/float64(p.Total)*100*100) / 100
}
