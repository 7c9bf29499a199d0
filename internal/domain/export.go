package domain

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// TripExport is the interchange record for a single trip with its nested
// categories and items. It carries no identifiers — importing always creates
// a brand-new trip, so an export can never overwrite an existing one.
//
// Dates are encoded date-only ("2006-01-02") via openapi_types.Date.
type TripExport struct {
	Name        string             `json:"name"`
	Destination string             `json:"destination,omitempty"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Description string             `json:"description,omitempty"`
	Categories  []CategoryExport   `json:"categories"`
}

// CategoryExport is one category in the interchange record.
type CategoryExport struct {
	Name  string       `json:"name"`
	Items []ItemExport `json:"items"`
}

// ItemExport is one item in the interchange record.
type ItemExport struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Packed   bool   `json:"packed"`
}
