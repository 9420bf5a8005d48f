package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/queroir/api/internal/restaurant/domain"
)

// DishRepository implements application.DishRepository using MongoDB.
type DishRepository struct {
	collection *mongo.Collection
}

func NewDishRepository(db *mongo.Database, collectionName string) *DishRepository {
	return &DishRepository{collection: db.Collection(collectionName)}
}

func (r *DishRepository) List(ctx context.Context) ([]domain.Dish, error) {
	return r.find(ctx, bson.M{})
}

func (r *DishRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	return r.find(ctx, bson.M{"restaurantId": restaurantID})
}

func (r *DishRepository) Create(ctx context.Context, dish *domain.Dish) error {
	_, err := r.collection.InsertOne(ctx, newDishDocument(dish))
	return err
}

// DeleteByRestaurant removes every dish of the restaurant. Deleting none is not an error.
func (r *DishRepository) DeleteByRestaurant(ctx context.Context, restaurantID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"restaurantId": restaurantID})
	return err
}

func (r *DishRepository) find(ctx context.Context, filter bson.M) ([]domain.Dish, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	dishes := make([]domain.Dish, 0)
	for cursor.Next(ctx) {
		var doc DishDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		dish, err := mapDishDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("dish %s: %w", doc.ID, err)
		}
		dishes = append(dishes, dish)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return dishes, nil
}
