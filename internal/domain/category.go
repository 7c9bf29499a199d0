package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named grouping of items within a trip.
// A category belongs to exactly one trip; deleting the trip deletes it.
type Category struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryDetail is a Category together with its items in insertion order.
type CategoryDetail struct {
	Category
	Items []Item
}

// Progress recomputes the packed/total counts over the category's items.
func (c CategoryDetail) Progress() Progress {
	p := Progress{Total: len(c.Items)}
	for _, it := range c.Items {
		if it.Packed {
			p.Packed++
		}
	}
	return p
}
