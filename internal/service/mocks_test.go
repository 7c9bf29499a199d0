package service_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lossophy/packattack/internal/domain"
	"github.com/lossophy/packattack/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Each method is a function
// field — set only the ones your test needs; a call on an unset field panics,
// which flags the unexpected repo access immediately.

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockCategoryRepo struct {
	create       func(ctx context.Context, category domain.Category) (domain.Category, error)
	getByID      func(ctx context.Context, tripID, categoryID uuid.UUID) (domain.Category, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Category, error)
	rename       func(ctx context.Context, tripID, categoryID uuid.UUID, name string) (domain.Category, error)
	delete       func(ctx context.Context, tripID, categoryID uuid.UUID) error
}

func (m *mockCategoryRepo) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	return m.create(ctx, category)
}
func (m *mockCategoryRepo) GetByID(ctx context.Context, tripID, categoryID uuid.UUID) (domain.Category, error) {
	return m.getByID(ctx, tripID, categoryID)
}
func (m *mockCategoryRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Category, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockCategoryRepo) Rename(ctx context.Context, tripID, categoryID uuid.UUID, name string) (domain.Category, error) {
	return m.rename(ctx, tripID, categoryID, name)
}
func (m *mockCategoryRepo) Delete(ctx context.Context, tripID, categoryID uuid.UUID) error {
	return m.delete(ctx, tripID, categoryID)
}

var _ repo.CategoryRepo = (*mockCategoryRepo)(nil)

type mockItemRepo struct {
	create           func(ctx context.Context, item domain.Item) (domain.Item, error)
	getByID          func(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Item, error)
	listByCategoryID func(ctx context.Context, categoryID uuid.UUID) ([]domain.Item, error)
	update           func(ctx context.Context, item domain.Item) (domain.Item, error)
	togglePacked     func(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Item, error)
	delete           func(ctx context.Context, categoryID, itemID uuid.UUID) error
}

func (m *mockItemRepo) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	return m.create(ctx, item)
}
func (m *mockItemRepo) GetByID(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Item, error) {
	return m.getByID(ctx, categoryID, itemID)
}
func (m *mockItemRepo) ListByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]domain.Item, error) {
	return m.listByCategoryID(ctx, categoryID)
}
func (m *mockItemRepo) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	return m.update(ctx, item)
}
func (m *mockItemRepo) TogglePacked(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Item, error) {
	return m.togglePacked(ctx, categoryID, itemID)
}
func (m *mockItemRepo) Delete(ctx context.Context, categoryID, itemID uuid.UUID) error {
	return m.delete(ctx, categoryID, itemID)
}

var _ repo.ItemRepo = (*mockItemRepo)(nil)

// ---- in-memory store -------------------------------------------------------

// memStore is a map-backed stand-in for the whole database, used by tests
// that exercise orchestration across all three repos (trip detail, template
// instantiation, export/import, seeding). Insertion order is preserved via
// the order slices, mirroring the seq columns in Postgres.
type memStore struct {
	mu            sync.Mutex
	trips         map[uuid.UUID]domain.Trip
	tripOrder     []uuid.UUID
	categories    map[uuid.UUID]domain.Category
	categoryOrder []uuid.UUID
	items         map[uuid.UUID]domain.Item
	itemOrder     []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		trips:      map[uuid.UUID]domain.Trip{},
		categories: map[uuid.UUID]domain.Category{},
		items:      map[uuid.UUID]domain.Item{},
	}
}

func (s *memStore) tripRepo() repo.TripRepo         { return &memTrips{s} }
func (s *memStore) categoryRepo() repo.CategoryRepo { return &memCategories{s} }
func (s *memStore) itemRepo() repo.ItemRepo         { return &memItems{s} }

func notFound(what string) error {
	return fmt.Errorf("memstore: %s: %w", what, domain.ErrNotFound)
}

type memTrips struct{ s *memStore }

func (r *memTrips) Create(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	trip.ID = uuid.New()
	r.s.trips[trip.ID] = trip
	r.s.tripOrder = append(r.s.tripOrder, trip.ID)
	return trip, nil
}

func (r *memTrips) GetByID(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	trip, ok := r.s.trips[id]
	if !ok {
		return domain.Trip{}, notFound("trip")
	}
	return trip, nil
}

func (r *memTrips) List(_ context.Context) ([]domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Trip
	for _, id := range r.s.tripOrder {
		out = append(out, r.s.trips[id])
	}
	return out, nil
}

func (r *memTrips) Update(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.trips[trip.ID]; !ok {
		return domain.Trip{}, notFound("trip")
	}
	r.s.trips[trip.ID] = trip
	return trip, nil
}

func (r *memTrips) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.trips[id]; !ok {
		return notFound("trip")
	}
	delete(r.s.trips, id)
	r.s.tripOrder = removeID(r.s.tripOrder, id)
	// cascade, matching the FK behavior
	for cid, c := range r.s.categories {
		if c.TripID != id {
			continue
		}
		delete(r.s.categories, cid)
		r.s.categoryOrder = removeID(r.s.categoryOrder, cid)
		for iid, it := range r.s.items {
			if it.CategoryID == cid {
				delete(r.s.items, iid)
				r.s.itemOrder = removeID(r.s.itemOrder, iid)
			}
		}
	}
	return nil
}

type memCategories struct{ s *memStore }

func (r *memCategories) Create(_ context.Context, category domain.Category) (domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.trips[category.TripID]; !ok {
		return domain.Category{}, notFound("trip")
	}
	category.ID = uuid.New()
	r.s.categories[category.ID] = category
	r.s.categoryOrder = append(r.s.categoryOrder, category.ID)
	return category, nil
}

func (r *memCategories) GetByID(_ context.Context, tripID, categoryID uuid.UUID) (domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[categoryID]
	if !ok || c.TripID != tripID {
		return domain.Category{}, notFound("category")
	}
	return c, nil
}

func (r *memCategories) ListByTripID(_ context.Context, tripID uuid.UUID) ([]domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Category
	for _, id := range r.s.categoryOrder {
		if c := r.s.categories[id]; c.TripID == tripID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCategories) Rename(_ context.Context, tripID, categoryID uuid.UUID, name string) (domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[categoryID]
	if !ok || c.TripID != tripID {
		return domain.Category{}, notFound("category")
	}
	c.Name = name
	r.s.categories[categoryID] = c
	return c, nil
}

func (r *memCategories) Delete(_ context.Context, tripID, categoryID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[categoryID]
	if !ok || c.TripID != tripID {
		return notFound("category")
	}
	delete(r.s.categories, categoryID)
	r.s.categoryOrder = removeID(r.s.categoryOrder, categoryID)
	for iid, it := range r.s.items {
		if it.CategoryID == categoryID {
			delete(r.s.items, iid)
			r.s.itemOrder = removeID(r.s.itemOrder, iid)
		}
	}
	return nil
}

type memItems struct{ s *memStore }

func (r *memItems) Create(_ context.Context, item domain.Item) (domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[item.CategoryID]; !ok {
		return domain.Item{}, notFound("category")
	}
	item.ID = uuid.New()
	r.s.items[item.ID] = item
	r.s.itemOrder = append(r.s.itemOrder, item.ID)
	return item, nil
}

func (r *memItems) GetByID(_ context.Context, categoryID, itemID uuid.UUID) (domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[itemID]
	if !ok || it.CategoryID != categoryID {
		return domain.Item{}, notFound("item")
	}
	return it, nil
}

func (r *memItems) ListByCategoryID(_ context.Context, categoryID uuid.UUID) ([]domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Item
	for _, id := range r.s.itemOrder {
		if it := r.s.items[id]; it.CategoryID == categoryID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memItems) Update(_ context.Context, item domain.Item) (domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.items[item.ID]
	if !ok || existing.CategoryID != item.CategoryID {
		return domain.Item{}, notFound("item")
	}
	r.s.items[item.ID] = item
	return item, nil
}

func (r *memItems) TogglePacked(_ context.Context, categoryID, itemID uuid.UUID) (domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[itemID]
	if !ok || it.CategoryID != categoryID {
		return domain.Item{}, notFound("item")
	}
	it.Packed = !it.Packed
	r.s.items[itemID] = it
	return it, nil
}

func (r *memItems) Delete(_ context.Context, categoryID, itemID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[itemID]
	if !ok || it.CategoryID != categoryID {
		return notFound("item")
	}
	delete(r.s.items, itemID)
	r.s.itemOrder = removeID(r.s.itemOrder, itemID)
	return nil
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
