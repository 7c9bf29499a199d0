package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lossophy/packattack/internal/domain"
	"github.com/lossophy/packattack/internal/repo"
)

// ItemService implements business logic for Item operations.
// It holds the category repo as well because creating an item requires
// verifying the parent category exists under the given trip.
type ItemService struct {
	categories repo.CategoryRepo
	items      repo.ItemRepo
}

// NewItemService constructs an ItemService backed by the provided repos.
func NewItemService(categories repo.CategoryRepo, items repo.ItemRepo) *ItemService {
	return &ItemService{categories: categories, items: items}
}

// Create verifies the parent category exists, validates the item, then appends
// it to the end of the category's item list. The quantity is floored at 1 —
// user input arrives as raw form values and is coerced, not rejected.
// Returns domain.ErrValidation if the trimmed name is empty.
// Returns domain.ErrNotFound if the parent category does not exist under the trip.
func (s *ItemService) Create(ctx context.Context, tripID uuid.UUID, item domain.Item) (domain.Item, error) {
	if _, err := s.categories.GetByID(ctx, tripID, item.CategoryID); err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Create: %w", err)
	}

	item, err := normalizeItem(item)
	if err != nil {
		return domain.Item{}, err
	}

	result, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Create: %w", err)
	}
	return result, nil
}

// Update validates and persists changes to an existing item's name, quantity,
// and packed flag. The quantity is floored at 1.
// Returns domain.ErrValidation for an empty trimmed name (the stored item
// keeps its previous values), domain.ErrNotFound if the item does not exist
// under the given category.
func (s *ItemService) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	item, err := normalizeItem(item)
	if err != nil {
		return domain.Item{}, err
	}
	result, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Update: %w", err)
	}
	return result, nil
}

// TogglePacked flips the packed flag unconditionally and returns the updated item.
// Returns domain.ErrNotFound if the item does not exist under the given category.
func (s *ItemService) TogglePacked(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Item, error) {
	result, err := s.items.TogglePacked(ctx, categoryID, itemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.TogglePacked: %w", err)
	}
	return result, nil
}

// Delete removes an item by ID, scoped to the given categoryID.
// Returns domain.ErrNotFound if the item does not exist under the category.
func (s *ItemService) Delete(ctx context.Context, categoryID, itemID uuid.UUID) error {
	if err := s.items.Delete(ctx, categoryID, itemID); err != nil {
		return fmt.Errorf("service.ItemService.Delete: %w", err)
	}
	return nil
}

// normalizeItem enforces the item business rules common to Create and Update:
//   - Name must be non-empty after trimming.
//   - Quantity is coerced to at least 1, never rejected.
func normalizeItem(item domain.Item) (domain.Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return domain.Item{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	return item, nil
}
