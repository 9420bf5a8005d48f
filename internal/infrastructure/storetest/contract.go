// Package storetest holds behavior checks every store backend must pass.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/queroir/api/internal/restaurant/application"
	"github.com/queroir/api/internal/restaurant/domain"
)

// Run exercises a RestaurantRepository and DishRepository pair against an empty store.
func Run(t *testing.T, restaurants application.RestaurantRepository, dishes application.DishRepository) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, 4, 10, 18, 0, 0, 0, time.UTC)

	older := newRestaurant("Aroma", domain.StatusWantToGo, base)
	newer := newRestaurant("Bamboo", domain.StatusBeenThere, base.Add(time.Hour))
	newer.Tags = domain.TagSet{
		{ID: uuid.NewString(), Name: domain.FavoriteTagName, Color: "#ef4444"},
		{ID: uuid.NewString(), Name: "Barato", Color: domain.DefaultTagColor},
	}
	newer.AveragePrice = "R$ 80"
	newer.PhotoURL = "data:image/png;base64,AAAA"

	t.Run("create and list newest first", func(t *testing.T) {
		for _, r := range []*domain.Restaurant{older, newer} {
			if err := restaurants.Create(ctx, r); err != nil {
				t.Fatalf("Create(%s): %v", r.Name, err)
			}
		}
		list, err := restaurants.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(list) != 2 || list[0].ID != newer.ID || list[1].ID != older.ID {
			t.Fatalf("List order = %+v", list)
		}
	})

	t.Run("find by id round trips fields", func(t *testing.T) {
		got, err := restaurants.FindByID(ctx, newer.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if got.Name != newer.Name || got.Address != newer.Address || got.CuisineType != newer.CuisineType {
			t.Errorf("text fields differ: %+v", got)
		}
		if got.Status != domain.StatusBeenThere {
			t.Errorf("Status = %v", got.Status)
		}
		if got.AveragePrice != "R$ 80" || got.PhotoURL != newer.PhotoURL {
			t.Errorf("optional fields differ: %+v", got)
		}
		if len(got.Tags) != 2 || !got.Tags.Has(domain.FavoriteTagName) || !got.Tags.Has("Barato") {
			t.Errorf("Tags = %+v", got.Tags)
		}
		if !got.CreatedAt.Equal(newer.CreatedAt) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, newer.CreatedAt)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		missing := uuid.NewString()
		if _, err := restaurants.FindByID(ctx, missing); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("FindByID error = %v, want ErrNotFound", err)
		}
		ghost := newRestaurant("Ghost", domain.StatusWantToGo, base)
		ghost.ID = missing
		if err := restaurants.Update(ctx, ghost); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Update error = %v, want ErrNotFound", err)
		}
		if err := restaurants.Delete(ctx, missing); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Delete error = %v, want ErrNotFound", err)
		}
	})

	t.Run("update keeps created at", func(t *testing.T) {
		changed := *older
		changed.Status = domain.StatusBeenThere
		changed.Notes = "reservar antes"
		changed.Tags = domain.TagSet{{ID: uuid.NewString(), Name: "Romântico", Color: "#ec4899"}}
		changed.UpdatedAt = base.Add(48 * time.Hour)
		if err := restaurants.Update(ctx, &changed); err != nil {
			t.Fatalf("Update: %v", err)
		}
		got, err := restaurants.FindByID(ctx, older.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if got.Status != domain.StatusBeenThere || got.Notes != "reservar antes" {
			t.Errorf("update not applied: %+v", got)
		}
		if len(got.Tags) != 1 || !got.Tags.Has("Romântico") {
			t.Errorf("tags not replaced: %+v", got.Tags)
		}
		if !got.CreatedAt.Equal(older.CreatedAt) {
			t.Errorf("CreatedAt changed to %v", got.CreatedAt)
		}
		if !got.UpdatedAt.Equal(changed.UpdatedAt) {
			t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, changed.UpdatedAt)
		}
	})

	t.Run("dishes", func(t *testing.T) {
		five := domain.Rating(5)
		first := &domain.Dish{ID: uuid.NewString(), RestaurantID: newer.ID, Name: "Temaki", Rating: &five, CreatedAt: base}
		second := &domain.Dish{ID: uuid.NewString(), RestaurantID: newer.ID, Name: "Missoshiru", CreatedAt: base.Add(time.Minute)}
		other := &domain.Dish{ID: uuid.NewString(), RestaurantID: older.ID, Name: "Risoto", CreatedAt: base.Add(2 * time.Minute)}
		for _, d := range []*domain.Dish{first, second, other} {
			if err := dishes.Create(ctx, d); err != nil {
				t.Fatalf("Create dish %s: %v", d.Name, err)
			}
		}

		all, err := dishes.List(ctx)
		if err != nil {
			t.Fatalf("List dishes: %v", err)
		}
		if len(all) != 3 || all[0].ID != other.ID {
			t.Errorf("dish order = %+v", all)
		}

		mine, err := dishes.ListByRestaurant(ctx, newer.ID)
		if err != nil {
			t.Fatalf("ListByRestaurant: %v", err)
		}
		if len(mine) != 2 || mine[0].ID != second.ID || mine[1].ID != first.ID {
			t.Fatalf("ListByRestaurant = %+v", mine)
		}
		if mine[1].Rating == nil || mine[1].Rating.Int() != 5 {
			t.Errorf("rating lost: %+v", mine[1])
		}
		if mine[0].Rating != nil {
			t.Errorf("absent rating became %v", mine[0].Rating.Int())
		}

		if err := dishes.DeleteByRestaurant(ctx, newer.ID); err != nil {
			t.Fatalf("DeleteByRestaurant: %v", err)
		}
		if err := dishes.DeleteByRestaurant(ctx, newer.ID); err != nil {
			t.Errorf("DeleteByRestaurant with nothing left: %v", err)
		}
		mine, err = dishes.ListByRestaurant(ctx, newer.ID)
		if err != nil || len(mine) != 0 {
			t.Errorf("dishes left after delete: %+v, %v", mine, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := restaurants.Delete(ctx, newer.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := restaurants.FindByID(ctx, newer.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("deleted restaurant still found: %v", err)
		}
		list, err := restaurants.List(ctx)
		if err != nil || len(list) != 1 {
			t.Errorf("List after delete = %+v, %v", list, err)
		}
	})
}

func newRestaurant(name string, status domain.Status, createdAt time.Time) *domain.Restaurant {
	return &domain.Restaurant{
		ID:          uuid.NewString(),
		Name:        name,
		Address:     "Rua " + name + ", 100",
		CuisineType: "Brasileira",
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}
