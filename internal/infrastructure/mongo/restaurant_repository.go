package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/queroir/api/internal/restaurant/domain"
)

// RestaurantRepository implements application.RestaurantRepository using MongoDB.
type RestaurantRepository struct {
	collection *mongo.Collection
}

// NewRestaurantRepository creates a new Mongo-backed restaurant repository.
func NewRestaurantRepository(db *mongo.Database, collectionName string) *RestaurantRepository {
	return &RestaurantRepository{collection: db.Collection(collectionName)}
}

// List returns every restaurant, newest first.
func (r *RestaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	restaurants := make([]domain.Restaurant, 0)
	for cursor.Next(ctx) {
		var doc RestaurantDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		restaurant, err := mapRestaurantDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("restaurant %s: %w", doc.ID, err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// FindByID returns a single restaurant by its identifier.
func (r *RestaurantRepository) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	var doc RestaurantDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	restaurant, err := mapRestaurantDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("restaurant %s: %w", id, err)
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	_, err := r.collection.InsertOne(ctx, newRestaurantDocument(restaurant))
	return err
}

// Update replaces the stored document. createdAt is never rewritten.
func (r *RestaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	doc := newRestaurantDocument(restaurant)
	update := bson.M{"$set": bson.M{
		"name":         doc.Name,
		"address":      doc.Address,
		"cuisineType":  doc.CuisineType,
		"status":       doc.Status,
		"averagePrice": doc.AveragePrice,
		"notes":        doc.Notes,
		"photoUrl":     doc.PhotoURL,
		"tags":         doc.Tags,
		"updatedAt":    doc.UpdatedAt,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": restaurant.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RestaurantRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
