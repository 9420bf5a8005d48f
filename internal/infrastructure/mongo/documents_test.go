package mongo

import (
	"errors"
	"testing"
	"time"

	"github.com/queroir/api/internal/restaurant/domain"
)

func TestRestaurantDocumentMapping(t *testing.T) {
	created := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	restaurant := &domain.Restaurant{
		ID:          "0b7c1c36-7c1c-4d0e-9a7e-5b6f4e0d1a2b",
		Name:        "Bamboo",
		Address:     "Rua B",
		CuisineType: "Japonês",
		Status:      domain.StatusBeenThere,
		Tags:        domain.TagSet{{ID: "t1", Name: "Favorito", Color: "#ef4444"}},
		CreatedAt:   created,
	}

	doc := newRestaurantDocument(restaurant)
	if doc.Status != "been_there" {
		t.Errorf("status stored as %q", doc.Status)
	}
	if doc.UpdatedAt != nil {
		t.Errorf("zero UpdatedAt should be omitted, got %v", doc.UpdatedAt)
	}

	back, err := mapRestaurantDocument(doc)
	if err != nil {
		t.Fatalf("mapRestaurantDocument: %v", err)
	}
	if back.Status != domain.StatusBeenThere || !back.Tags.Has("Favorito") {
		t.Errorf("unexpected restaurant %+v", back)
	}
	if !back.UpdatedAt.Equal(created) {
		t.Errorf("UpdatedAt should fall back to CreatedAt, got %v", back.UpdatedAt)
	}

	doc.Status = "maybe"
	if _, err := mapRestaurantDocument(doc); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("unknown stored status error = %v", err)
	}
}

func TestDishDocumentMapping(t *testing.T) {
	rating := domain.Rating(5)
	doc := newDishDocument(&domain.Dish{ID: "d1", RestaurantID: "r1", Name: "Temaki", Rating: &rating})
	if doc.Rating == nil || *doc.Rating != 5 {
		t.Fatalf("rating stored as %v", doc.Rating)
	}

	dish, err := mapDishDocument(doc)
	if err != nil {
		t.Fatalf("mapDishDocument: %v", err)
	}
	if dish.Rating == nil || dish.Rating.Int() != 5 {
		t.Errorf("rating mapped as %v", dish.Rating)
	}

	doc.Rating = nil
	if dish, err := mapDishDocument(doc); err != nil || dish.Rating != nil {
		t.Errorf("unrated dish = %+v, %v", dish, err)
	}

	for _, bad := range []int{0, 6, 9, -1} {
		doc.Rating = &bad
		if _, err := mapDishDocument(doc); !errors.Is(err, domain.ErrInvalidRating) {
			t.Errorf("stored rating %d: error = %v, want ErrInvalidRating", bad, err)
		}
	}
}
