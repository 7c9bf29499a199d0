// Package domain contains the core data types for the PackAttack application.
// This package has zero dependencies beyond ID/date types and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a journey with a date range, owning categories of packable
// items. A trip is the top-level aggregate; categories belong to a trip and
// items to a category.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"` // always on or after StartDate
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TripDetail is a Trip together with its fully loaded categories and items,
// in insertion order. It is the unit the presentation layer renders and the
// input to all progress calculations.
type TripDetail struct {
	Trip
	Categories []CategoryDetail
}

// Progress recomputes the packed/total counts over all items in all
// categories. Pure function of current state — nothing is cached between
// calls, so a toggle or add/remove is reflected on the next query.
func (t TripDetail) Progress() Progress {
	var p Progress
	for _, c := range t.Categories {
		cp := c.Progress()
		p.Packed += cp.Packed
		p.Total += cp.Total
	}
	return p
}
