package domain

import (
	"encoding/json"
	"strconv"
)

// Template is a reusable, read-only blueprint of categories and items used to
// pre-populate a new trip. Templates are not owned by any trip — instantiation
// copies them, so many trips can be created from the same template without
// mutating it.
type Template struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Categories []TemplateCategory `json:"categories"`
}

// TemplateCategory is one named group of template items.
type TemplateCategory struct {
	Name  string         `json:"name"`
	Items []TemplateItem `json:"items"`
}

// TemplateItem describes one item to generate. It carries either a fixed
// quantity or a quantity-per-day factor; when both are present the per-day
// factor wins (see DeriveQuantity). Nil means "not specified".
type TemplateItem struct {
	Name           string   `json:"name"`
	Quantity       *int     `json:"quantity,omitempty"`
	QuantityPerDay *float64 `json:"quantity_per_day,omitempty"`
}

// UnmarshalJSON decodes a template item leniently. Template files are edited
// by hand, so quantity fields may arrive as numbers, numeric strings, or
// garbage. Unusable values decode to nil and DeriveQuantity's fallback to 1
// takes over — a bad quantity must never sink the whole template file.
func (i *TemplateItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name           string          `json:"name"`
		Quantity       json.RawMessage `json:"quantity"`
		QuantityPerDay json.RawMessage `json:"quantity_per_day"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	i.Name = raw.Name
	i.Quantity = nil
	i.QuantityPerDay = nil

	if f, ok := parseLenientNumber(raw.Quantity); ok {
		n := int(f)
		i.Quantity = &n
	}
	if f, ok := parseLenientNumber(raw.QuantityPerDay); ok {
		i.QuantityPerDay = &f
	}
	return nil
}

// parseLenientNumber accepts a JSON number or a numeric string.
// Anything else (null, absent, non-numeric) reports ok=false.
func parseLenientNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
