package application

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/queroir/api/internal/restaurant/domain"
)

// memoryRestaurants is a RestaurantRepository backed by a slice.
type memoryRestaurants struct {
	items     []domain.Restaurant
	listErr   error
	updated   []string
	deleted   []string
	listCalls int
}

func (m *memoryRestaurants) List(_ context.Context) ([]domain.Restaurant, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := slices.Clone(m.items)
	slices.SortStableFunc(out, func(a, b domain.Restaurant) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (m *memoryRestaurants) FindByID(_ context.Context, id string) (*domain.Restaurant, error) {
	for _, r := range m.items {
		if r.ID == id {
			r.Tags = slices.Clone(r.Tags)
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memoryRestaurants) Create(_ context.Context, r *domain.Restaurant) error {
	m.items = append(m.items, *r)
	return nil
}

func (m *memoryRestaurants) Update(_ context.Context, r *domain.Restaurant) error {
	for i := range m.items {
		if m.items[i].ID == r.ID {
			m.items[i] = *r
			m.updated = append(m.updated, r.ID)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memoryRestaurants) Delete(_ context.Context, id string) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = slices.Delete(m.items, i, i+1)
			m.deleted = append(m.deleted, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

// memoryDishes is a DishRepository backed by a slice.
type memoryDishes struct {
	items       []domain.Dish
	deletedFor  []string
	deleteErr   error
	lastCreated *domain.Dish
}

func (m *memoryDishes) List(_ context.Context) ([]domain.Dish, error) {
	out := slices.Clone(m.items)
	slices.SortStableFunc(out, func(a, b domain.Dish) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (m *memoryDishes) ListByRestaurant(_ context.Context, restaurantID string) ([]domain.Dish, error) {
	out := make([]domain.Dish, 0)
	for _, d := range m.items {
		if d.RestaurantID == restaurantID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memoryDishes) Create(_ context.Context, d *domain.Dish) error {
	m.items = append(m.items, *d)
	m.lastCreated = d
	return nil
}

func (m *memoryDishes) DeleteByRestaurant(_ context.Context, restaurantID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedFor = append(m.deletedFor, restaurantID)
	m.items = slices.DeleteFunc(m.items, func(d domain.Dish) bool { return d.RestaurantID == restaurantID })
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

type fixedIndex int

func (f fixedIndex) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

type constAngle float64

func (c constAngle) Float64() float64 { return float64(c) }

func seedRestaurants() *memoryRestaurants {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &memoryRestaurants{items: []domain.Restaurant{
		{
			ID: "r1", Name: "Aroma", Address: "Rua A", CuisineType: "Italiano",
			Status: domain.StatusWantToGo, CreatedAt: base,
		},
		{
			ID: "r2", Name: "Bamboo", Address: "Rua B", CuisineType: "Japonês",
			Status: domain.StatusBeenThere, CreatedAt: base.Add(time.Hour),
			Tags: domain.TagSet{{ID: "t1", Name: domain.FavoriteTagName, Color: "#ef4444"}},
		},
		{
			ID: "r3", Name: "Cantina", Address: "Rua C", CuisineType: "Italiano",
			Status: domain.StatusWantToGo, CreatedAt: base.Add(2 * time.Hour),
			Tags: domain.TagSet{{ID: "t2", Name: "Barato"}, {ID: "t3", Name: domain.FavoriteTagName}},
		},
	}}
}

func restaurantNames(items []domain.Restaurant) string {
	parts := make([]string, 0, len(items))
	for _, r := range items {
		parts = append(parts, r.Name)
	}
	return strings.Join(parts, ",")
}
