package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/queroir/api/internal/restaurant/domain"
)

const dishColumns = `id, restaurant_id, name, rating, notes, photo_url, created_at`

type DishRepository struct {
	db *sql.DB
}

func (r *DishRepository) List(ctx context.Context) ([]domain.Dish, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+dishColumns+` FROM dishes ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("querying dishes: %w", err)
	}
	return collectDishes(rows)
}

func (r *DishRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+dishColumns+` FROM dishes WHERE restaurant_id = ? ORDER BY created_at DESC, id`,
		restaurantID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying dishes: %w", err)
	}
	return collectDishes(rows)
}

func (r *DishRepository) Create(ctx context.Context, dish *domain.Dish) error {
	var rating sql.NullInt64
	if dish.Rating != nil {
		rating = sql.NullInt64{Int64: int64(dish.Rating.Int()), Valid: true}
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO dishes (`+dishColumns+`)
	VALUES (?, ?, ?, ?, ?, ?, ?)`,
		dish.ID,
		dish.RestaurantID,
		dish.Name,
		rating,
		dish.Notes,
		dish.PhotoURL,
		dish.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("inserting dish: %w", err)
	}
	return nil
}

func (r *DishRepository) DeleteByRestaurant(ctx context.Context, restaurantID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dishes WHERE restaurant_id = ?`, restaurantID); err != nil {
		return fmt.Errorf("deleting dishes: %w", err)
	}
	return nil
}

func collectDishes(rows *sql.Rows) ([]domain.Dish, error) {
	defer rows.Close()

	dishes := make([]domain.Dish, 0)
	for rows.Next() {
		var (
			dish      domain.Dish
			rating    sql.NullInt64
			createdAt int64
		)
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &rating, &dish.Notes, &dish.PhotoURL, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning dish: %w", err)
		}
		if rating.Valid {
			value, err := domain.NewRating(int(rating.Int64))
			if err != nil {
				return nil, fmt.Errorf("dish %s: %w", dish.ID, err)
			}
			dish.Rating = &value
		}
		dish.CreatedAt = time.Unix(0, createdAt).UTC()
		dishes = append(dishes, dish)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dishes: %w", err)
	}
	return dishes, nil
}
