package mongo

import (
	"time"

	"github.com/queroir/api/internal/restaurant/domain"
)

// RestaurantDocument is the stored shape of a restaurant. _id holds the UUID string.
type RestaurantDocument struct {
	ID           string        `bson:"_id"`
	Name         string        `bson:"name"`
	Address      string        `bson:"address"`
	CuisineType  string        `bson:"cuisineType,omitempty"`
	Status       string        `bson:"status"`
	AveragePrice string        `bson:"averagePrice,omitempty"`
	Notes        string        `bson:"notes,omitempty"`
	PhotoURL     string        `bson:"photoUrl,omitempty"`
	Tags         []TagDocument `bson:"tags,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt"`
	UpdatedAt    *time.Time    `bson:"updatedAt,omitempty"`
}

// TagDocument is embedded in RestaurantDocument.
type TagDocument struct {
	ID    string `bson:"id"`
	Name  string `bson:"name"`
	Color string `bson:"color"`
}

// DishDocument is the stored shape of a dish.
type DishDocument struct {
	ID           string    `bson:"_id"`
	RestaurantID string    `bson:"restaurantId"`
	Name         string    `bson:"name"`
	Rating       *int      `bson:"rating,omitempty"`
	Notes        string    `bson:"notes,omitempty"`
	PhotoURL     string    `bson:"photoUrl,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
}

func newRestaurantDocument(r *domain.Restaurant) RestaurantDocument {
	tags := make([]TagDocument, 0, len(r.Tags))
	for _, tag := range r.Tags {
		tags = append(tags, TagDocument{ID: tag.ID, Name: tag.Name, Color: tag.Color})
	}
	doc := RestaurantDocument{
		ID:           r.ID,
		Name:         r.Name,
		Address:      r.Address,
		CuisineType:  r.CuisineType,
		Status:       r.Status.String(),
		AveragePrice: r.AveragePrice,
		Notes:        r.Notes,
		PhotoURL:     r.PhotoURL,
		Tags:         tags,
		CreatedAt:    r.CreatedAt.UTC(),
	}
	if !r.UpdatedAt.IsZero() {
		updatedAt := r.UpdatedAt.UTC()
		doc.UpdatedAt = &updatedAt
	}
	return doc
}

// mapRestaurantDocument rejects documents whose status is not one of the two known values.
func mapRestaurantDocument(doc RestaurantDocument) (domain.Restaurant, error) {
	status, err := domain.ParseStatus(doc.Status)
	if err != nil {
		return domain.Restaurant{}, err
	}
	tags := make([]domain.Tag, 0, len(doc.Tags))
	for _, tag := range doc.Tags {
		tags = append(tags, domain.Tag{ID: tag.ID, Name: tag.Name, Color: tag.Color})
	}
	updatedAt := doc.CreatedAt
	if doc.UpdatedAt != nil {
		updatedAt = *doc.UpdatedAt
	}
	return domain.Restaurant{
		ID:           doc.ID,
		Name:         doc.Name,
		Address:      doc.Address,
		CuisineType:  doc.CuisineType,
		Status:       status,
		AveragePrice: doc.AveragePrice,
		Notes:        doc.Notes,
		PhotoURL:     doc.PhotoURL,
		Tags:         domain.NewTagSet(tags),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func newDishDocument(d *domain.Dish) DishDocument {
	doc := DishDocument{
		ID:           d.ID,
		RestaurantID: d.RestaurantID,
		Name:         d.Name,
		Notes:        d.Notes,
		PhotoURL:     d.PhotoURL,
		CreatedAt:    d.CreatedAt.UTC(),
	}
	if d.Rating != nil {
		rating := d.Rating.Int()
		doc.Rating = &rating
	}
	return doc
}

// mapDishDocument rejects documents whose rating lies outside 1..5.
func mapDishDocument(doc DishDocument) (domain.Dish, error) {
	dish := domain.Dish{
		ID:           doc.ID,
		RestaurantID: doc.RestaurantID,
		Name:         doc.Name,
		Notes:        doc.Notes,
		PhotoURL:     doc.PhotoURL,
		CreatedAt:    doc.CreatedAt,
	}
	if doc.Rating != nil {
		rating, err := domain.NewRating(*doc.Rating)
		if err != nil {
			return domain.Dish{}, err
		}
		dish.Rating = &rating
	}
	return dish, nil
}
