package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/lossophy/packattack/internal/domain"
	"github.com/lossophy/packattack/internal/repo"
)

// ExportService converts trips to and from the interchange record shape.
// Exported records carry no identifiers, so importing one always creates a
// brand-new trip and can never overwrite existing data.
type ExportService struct {
	trips      repo.TripRepo
	categories repo.CategoryRepo
	items      repo.ItemRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, categories repo.CategoryRepo, items repo.ItemRepo) *ExportService {
	return &ExportService{trips: trips, categories: categories, items: items}
}

// Export serializes one trip with its nested categories and items, preserving
// insertion order. Returns domain.ErrNotFound if the trip does not exist.
func (s *ExportService) Export(ctx context.Context, tripID uuid.UUID) (domain.TripExport, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.TripExport{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	out := domain.TripExport{
		Name:        trip.Name,
		Destination: trip.Destination,
		StartDate:   openapi_types.Date{Time: trip.StartDate},
		EndDate:     openapi_types.Date{Time: trip.EndDate},
		Description: trip.Description,
		Categories:  []domain.CategoryExport{},
	}

	categories, err := s.categories.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.TripExport{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	for _, c := range categories {
		items, err := s.items.ListByCategoryID(ctx, c.ID)
		if err != nil {
			return domain.TripExport{}, fmt.Errorf("service.ExportService.Export: %w", err)
		}
		ce := domain.CategoryExport{Name: c.Name, Items: []domain.ItemExport{}}
		for _, it := range items {
			ce.Items = append(ce.Items, domain.ItemExport{
				Name:     it.Name,
				Quantity: it.Quantity,
				Packed:   it.Packed,
			})
		}
		out.Categories = append(out.Categories, ce)
	}
	return out, nil
}

// Import reconstructs a trip from an interchange record under a fresh
// identifier. The record is validated in full before the first write; if a
// later insert still fails, the partially created trip is deleted again (the
// cascade removes any children) so existing data is left untouched either way.
// Returns domain.ErrValidation for a record that fails the business rules.
func (s *ExportService) Import(ctx context.Context, record domain.TripExport) (domain.Trip, error) {
	record, err := validateExport(record)
	if err != nil {
		return domain.Trip{}, err
	}

	trip, err := s.trips.Create(ctx, domain.Trip{
		Name:        record.Name,
		Destination: record.Destination,
		StartDate:   record.StartDate.Time,
		EndDate:     record.EndDate.Time,
		Description: record.Description,
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ExportService.Import: %w", err)
	}

	for _, ce := range record.Categories {
		category, err := s.categories.Create(ctx, domain.Category{TripID: trip.ID, Name: ce.Name})
		if err != nil {
			return domain.Trip{}, s.rollbackImport(ctx, trip.ID, err)
		}
		for _, ie := range ce.Items {
			item := domain.Item{
				CategoryID: category.ID,
				Name:       ie.Name,
				Quantity:   ie.Quantity,
				Packed:     ie.Packed,
			}
			if _, err := s.items.Create(ctx, item); err != nil {
				return domain.Trip{}, s.rollbackImport(ctx, trip.ID, err)
			}
		}
	}
	return trip, nil
}

// rollbackImport deletes the half-imported trip and wraps the original error.
// The delete is best-effort — the original failure is what the caller needs.
func (s *ExportService) rollbackImport(ctx context.Context, tripID uuid.UUID, cause error) error {
	_ = s.trips.Delete(ctx, tripID)
	return fmt.Errorf("service.ExportService.Import: %w", cause)
}

// validateExport trims all names and enforces the same rules the mutation
// operations would: non-empty trip and category and item names, end date not
// before start date. Quantities below 1 are coerced to 1, matching the
// defensive handling of raw user input elsewhere.
func validateExport(record domain.TripExport) (domain.TripExport, error) {
	record.Name = strings.TrimSpace(record.Name)
	record.Destination = strings.TrimSpace(record.Destination)
	record.Description = strings.TrimSpace(record.Description)

	if record.Name == "" {
		return domain.TripExport{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if record.StartDate.IsZero() || record.EndDate.IsZero() {
		return domain.TripExport{}, fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if record.EndDate.Before(record.StartDate.Time) {
		return domain.TripExport{}, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}

	for ci := range record.Categories {
		c := &record.Categories[ci]
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return domain.TripExport{}, fmt.Errorf("%w: category name is required", domain.ErrValidation)
		}
		for ii := range c.Items {
			it := &c.Items[ii]
			it.Name = strings.TrimSpace(it.Name)
			if it.Name == "" {
				return domain.TripExport{}, fmt.Errorf("%w: item name is required", domain.ErrValidation)
			}
			if it.Quantity < 1 {
				it.Quantity = 1
			}
		}
	}
	return record, nil
}
