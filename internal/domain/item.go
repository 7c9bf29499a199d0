package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single packable thing with a required quantity and packed state.
// An item belongs to exactly one category; deleting the category deletes it.
// Quantity is never below 1 — services floor it on the way in.
type Item struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Packed     bool      `json:"packed"`
	CreatedAt  time.Time `json:"created_at"`
}
