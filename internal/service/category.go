package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lossophy/packattack/internal/domain"
	"github.com/lossophy/packattack/internal/repo"
)

// CategoryService implements business logic for Category operations.
// It holds the trip repo as well because creating a category requires
// verifying the parent trip exists.
type CategoryService struct {
	trips      repo.TripRepo
	categories repo.CategoryRepo
	items      repo.ItemRepo
}

// NewCategoryService constructs a CategoryService backed by the provided repos.
func NewCategoryService(trips repo.TripRepo, categories repo.CategoryRepo, items repo.ItemRepo) *CategoryService {
	return &CategoryService{trips: trips, categories: categories, items: items}
}

// Create verifies the parent trip exists, validates the name, then appends a
// new category to the end of the trip's category list.
// Returns domain.ErrValidation if the trimmed name is empty.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *CategoryService) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	if _, err := s.trips.GetByID(ctx, category.TripID); err != nil {
		return domain.Category{}, fmt.Errorf("service.CategoryService.Create: %w", err)
	}

	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return domain.Category{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	result, err := s.categories.Create(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("service.CategoryService.Create: %w", err)
	}
	return result, nil
}

// GetWithItems returns a single category with its items in insertion order.
func (s *CategoryService) GetWithItems(ctx context.Context, tripID, categoryID uuid.UUID) (domain.CategoryDetail, error) {
	category, err := s.categories.GetByID(ctx, tripID, categoryID)
	if err != nil {
		return domain.CategoryDetail{}, fmt.Errorf("service.CategoryService.GetWithItems: %w", err)
	}
	items, err := s.items.ListByCategoryID(ctx, categoryID)
	if err != nil {
		return domain.CategoryDetail{}, fmt.Errorf("service.CategoryService.GetWithItems: %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	return domain.CategoryDetail{Category: category, Items: items}, nil
}

// Rename changes the category name after trimming surrounding whitespace.
// A rename that would result in an empty name is rejected with
// domain.ErrValidation before anything is written, so the category keeps
// its previous name.
func (s *CategoryService) Rename(ctx context.Context, tripID, categoryID uuid.UUID, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	result, err := s.categories.Rename(ctx, tripID, categoryID, name)
	if err != nil {
		return domain.Category{}, fmt.Errorf("service.CategoryService.Rename: %w", err)
	}
	return result, nil
}

// Delete removes a category and, transitively, all its items.
// Returns domain.ErrNotFound if the category does not exist under the trip.
func (s *CategoryService) Delete(ctx context.Context, tripID, categoryID uuid.UUID) error {
	if err := s.categories.Delete(ctx, tripID, categoryID); err != nil {
		return fmt.Errorf("service.CategoryService.Delete: %w", err)
	}
	return nil
}
