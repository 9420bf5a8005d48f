package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/queroir/api/internal/restaurant/domain"
)

const (
	dishColumns = `id, restaurant_id, name, rating, notes, photo_url, created_at`
	dishSelect  = `SELECT id::text, restaurant_id::text, name, rating, notes, photo_url, created_at FROM dishes`
)

type DishRepository struct {
	pool *pgxpool.Pool
}

func (r *DishRepository) List(ctx context.Context) ([]domain.Dish, error) {
	rows, err := r.pool.Query(ctx, dishSelect+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("querying dishes: %w", err)
	}
	return collectDishes(rows)
}

func (r *DishRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	rows, err := r.pool.Query(ctx,
		dishSelect+` WHERE restaurant_id = $1 ORDER BY created_at DESC, id`,
		restaurantID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying dishes: %w", err)
	}
	return collectDishes(rows)
}

func (r *DishRepository) Create(ctx context.Context, dish *domain.Dish) error {
	var rating *int
	if dish.Rating != nil {
		v := dish.Rating.Int()
		rating = &v
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO dishes (`+dishColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		dish.ID,
		dish.RestaurantID,
		dish.Name,
		rating,
		dish.Notes,
		dish.PhotoURL,
		dish.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting dish: %w", err)
	}
	return nil
}

func (r *DishRepository) DeleteByRestaurant(ctx context.Context, restaurantID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM dishes WHERE restaurant_id = $1`, restaurantID); err != nil {
		return fmt.Errorf("deleting dishes: %w", err)
	}
	return nil
}

func collectDishes(rows pgx.Rows) ([]domain.Dish, error) {
	defer rows.Close()

	dishes := make([]domain.Dish, 0)
	for rows.Next() {
		var (
			dish   domain.Dish
			rating *int
		)
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &rating, &dish.Notes, &dish.PhotoURL, &dish.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning dish: %w", err)
		}
		if rating != nil {
			value, err := domain.NewRating(*rating)
			if err != nil {
				return nil, fmt.Errorf("dish %s: %w", dish.ID, err)
			}
			dish.Rating = &value
		}
		dishes = append(dishes, dish)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dishes: %w", err)
	}
	return dishes, nil
}
