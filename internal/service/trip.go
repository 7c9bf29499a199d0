// Package service contains the business logic for the PackAttack API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lossophy/packattack/internal/domain"
	"github.com/lossophy/packattack/internal/repo"
)

// TripService implements business logic for Trip operations.
// It holds all three repos because the trip detail view and template
// instantiation span the whole trip → category → item tree.
type TripService struct {
	trips      repo.TripRepo
	categories repo.CategoryRepo
	items      repo.ItemRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, categories repo.CategoryRepo, items repo.ItemRepo) *TripService {
	return &TripService{trips: trips, categories: categories, items: items}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip, err := normalizeTrip(trip)
	if err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID without its categories.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// GetDetail returns a trip with all categories and items in insertion order.
// Progress is derived from the returned detail, never stored.
func (s *TripService) GetDetail(ctx context.Context, id uuid.UUID) (domain.TripDetail, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.TripDetail{}, fmt.Errorf("service.TripService.GetDetail: %w", err)
	}

	categories, err := s.categories.ListByTripID(ctx, id)
	if err != nil {
		return domain.TripDetail{}, fmt.Errorf("service.TripService.GetDetail: %w", err)
	}

	detail := domain.TripDetail{Trip: trip, Categories: []domain.CategoryDetail{}}
	for _, c := range categories {
		items, err := s.items.ListByCategoryID(ctx, c.ID)
		if err != nil {
			return domain.TripDetail{}, fmt.Errorf("service.TripService.GetDetail: %w", err)
		}
		if items == nil {
			items = []domain.Item{}
		}
		detail.Categories = append(detail.Categories, domain.CategoryDetail{Category: c, Items: items})
	}
	return detail, nil
}

// List returns all trips.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// ListDetails returns all trips with their categories and items loaded,
// so list views can show per-trip progress. Always returns a non-nil slice.
func (s *TripService) ListDetails(ctx context.Context) ([]domain.TripDetail, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListDetails: %w", err)
	}

	details := []domain.TripDetail{}
	for _, t := range trips {
		d, err := s.GetDetail(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("service.TripService.ListDetails: %w", err)
		}
		details = append(details, d)
	}
	return details, nil
}

// Update validates and updates an existing trip.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist. On validation failure nothing is written, so the
// stored trip keeps its previous values.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip, err := normalizeTrip(trip)
	if err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID, cascading to categories and items.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// ApplyTemplate instantiates a packing-list template onto an existing trip.
// Each template category with a non-empty trimmed name becomes a new category;
// each template item with a non-empty trimmed name becomes a new unpacked item
// whose quantity comes from domain.DeriveQuantity and the trip's date range.
// Template order is preserved. Applying the same template twice appends fresh
// copies — it never merges into existing categories of the same name.
func (s *TripService) ApplyTemplate(ctx context.Context, tripID uuid.UUID, tmpl domain.Template) error {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.TripService.ApplyTemplate: %w", err)
	}

	for _, tc := range tmpl.Categories {
		name := strings.TrimSpace(tc.Name)
		if name == "" {
			continue
		}
		category, err := s.categories.Create(ctx, domain.Category{TripID: trip.ID, Name: name})
		if err != nil {
			return fmt.Errorf("service.TripService.ApplyTemplate: %w", err)
		}

		for _, ti := range tc.Items {
			itemName := strings.TrimSpace(ti.Name)
			if itemName == "" {
				continue
			}
			item := domain.Item{
				CategoryID: category.ID,
				Name:       itemName,
				Quantity:   domain.DeriveQuantity(ti, trip.StartDate, trip.EndDate),
				Packed:     false,
			}
			if _, err := s.items.Create(ctx, item); err != nil {
				return fmt.Errorf("service.TripService.ApplyTemplate: %w", err)
			}
		}
	}
	return nil
}

// normalizeTrip trims text fields and enforces the trip business rules:
//   - Name must be non-empty after trimming.
//   - EndDate must not be before StartDate (same-day trips are valid).
//   - Both dates must be set.
func normalizeTrip(trip domain.Trip) (domain.Trip, error) {
	trip.Name = strings.TrimSpace(trip.Name)
	trip.Destination = strings.TrimSpace(trip.Destination)
	trip.Description = strings.TrimSpace(trip.Description)

	if trip.Name == "" {
		return domain.Trip{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return domain.Trip{}, fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return domain.Trip{}, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return trip, nil
}
