package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lossophy/packattack/internal/domain"
	"github.com/lossophy/packattack/internal/repo"
)

// SeedService populates an empty database with two example trips so a fresh
// install has something to show. It writes nothing when any trip exists.
type SeedService struct {
	trips      repo.TripRepo
	categories repo.CategoryRepo
	items      repo.ItemRepo
}

// NewSeedService constructs a SeedService backed by the provided repos.
func NewSeedService(trips repo.TripRepo, categories repo.CategoryRepo, items repo.ItemRepo) *SeedService {
	return &SeedService{trips: trips, categories: categories, items: items}
}

// seedItem is a compact literal for building the sample data below.
type seedItem struct {
	name     string
	quantity int
	packed   bool
}

// seedCategory pairs a category name with its items.
type seedCategory struct {
	name  string
	items []seedItem
}

// seedTrip is one complete sample trip.
type seedTrip struct {
	trip       domain.Trip
	categories []seedCategory
}

// EnsureSampleTrips creates the sample trips if and only if no trips exist.
// Returns the number of trips created (0 when the database was not empty).
func (s *SeedService) EnsureSampleTrips(ctx context.Context) (int, error) {
	existing, err := s.trips.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.SeedService.EnsureSampleTrips: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for _, st := range sampleTrips() {
		trip, err := s.trips.Create(ctx, st.trip)
		if err != nil {
			return 0, fmt.Errorf("service.SeedService.EnsureSampleTrips: %w", err)
		}
		for _, sc := range st.categories {
			category, err := s.categories.Create(ctx, domain.Category{TripID: trip.ID, Name: sc.name})
			if err != nil {
				return 0, fmt.Errorf("service.SeedService.EnsureSampleTrips: %w", err)
			}
			for _, si := range sc.items {
				item := domain.Item{
					CategoryID: category.ID,
					Name:       si.name,
					Quantity:   si.quantity,
					Packed:     si.packed,
				}
				if _, err := s.items.Create(ctx, item); err != nil {
					return 0, fmt.Errorf("service.SeedService.EnsureSampleTrips: %w", err)
				}
			}
		}
	}
	return len(sampleTrips()), nil
}

// sampleTrips returns the built-in example data: a short city trip and a
// longer hiking holiday.
func sampleTrips() []seedTrip {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []seedTrip{
		{
			trip: domain.Trip{
				Name:        "City Trip",
				Destination: "Berlin",
				StartDate:   date(2026, time.May, 10),
				EndDate:     date(2026, time.May, 14),
				Description: "Short city break",
			},
			categories: []seedCategory{
				{name: "Clothing", items: []seedItem{
					{name: "Pants", quantity: 2},
					{name: "T-Shirt", quantity: 3},
					{name: "Light jacket", quantity: 1},
					{name: "Underwear", quantity: 5},
				}},
				{name: "Electronics", items: []seedItem{
					{name: "Phone charger", quantity: 1},
					{name: "Camera", quantity: 1, packed: true},
				}},
				{name: "Accessories", items: []seedItem{
					{name: "Sunglasses", quantity: 1},
				}},
				{name: "Miscellaneous", items: []seedItem{
					{name: "Train ticket", quantity: 1},
					{name: "Passport or ID", quantity: 1},
					{name: "Cash", quantity: 1},
					{name: "Snacks for the road", quantity: 1},
				}},
			},
		},
		{
			trip: domain.Trip{
				Name:        "Alpine Hiking",
				Destination: "Switzerland",
				StartDate:   date(2026, time.August, 1),
				EndDate:     date(2026, time.August, 10),
				Description: "Outdoor adventure in the Alps",
			},
			categories: []seedCategory{
				{name: "Gear", items: []seedItem{
					{name: "Hiking boots", quantity: 1},
					{name: "Backpack", quantity: 1},
					{name: "Sleeping bag", quantity: 1},
					{name: "First aid kit", quantity: 1},
					{name: "Blister plasters", quantity: 1},
				}},
				{name: "Accessories", items: []seedItem{
					{name: "Sunglasses", quantity: 1},
					{name: "Sunscreen", quantity: 1},
					{name: "Sun hat", quantity: 1},
				}},
				{name: "Clothing", items: []seedItem{
					{name: "T-Shirt", quantity: 4},
					{name: "Hiking pants", quantity: 1},
					{name: "Underwear", quantity: 4},
					{name: "Rain pants", quantity: 1},
					{name: "Rain jacket", quantity: 1},
				}},
				{name: "Electronics", items: []seedItem{
					{name: "Small solar panel", quantity: 1},
					{name: "Charging cable", quantity: 1},
				}},
			},
		},
	}
}
