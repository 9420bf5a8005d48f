package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/queroir/api/internal/restaurant/domain"
)

const (
	restaurantColumns = `id, name, address, cuisine_type, status, average_price, notes, photo_url, tags, created_at, updated_at`
	restaurantSelect  = `SELECT id::text, name, address, cuisine_type, status, average_price, notes, photo_url, tags, created_at, updated_at FROM restaurants`
)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

type tagRow struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (r *RestaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.pool.Query(ctx, restaurantSelect+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("querying restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := make([]domain.Restaurant, 0)
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating restaurants: %w", err)
	}
	return restaurants, nil
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	row := r.pool.QueryRow(ctx, restaurantSelect+` WHERE id = $1`, id)
	restaurant, err := scanRestaurant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	tags, err := encodeTags(restaurant.Tags)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO restaurants (`+restaurantColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		restaurant.ID,
		restaurant.Name,
		restaurant.Address,
		restaurant.CuisineType,
		restaurant.Status.String(),
		restaurant.AveragePrice,
		restaurant.Notes,
		restaurant.PhotoURL,
		tags,
		restaurant.CreatedAt,
		restaurant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting restaurant: %w", err)
	}
	return nil
}

func (r *RestaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	tags, err := encodeTags(restaurant.Tags)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE restaurants SET
    name = $2,
    address = $3,
    cuisine_type = $4,
    status = $5,
    average_price = $6,
    notes = $7,
    photo_url = $8,
    tags = $9,
    updated_at = $10
WHERE id = $1`,
		restaurant.ID,
		restaurant.Name,
		restaurant.Address,
		restaurant.CuisineType,
		restaurant.Status.String(),
		restaurant.AveragePrice,
		restaurant.Notes,
		restaurant.PhotoURL,
		tags,
		restaurant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the row; dishes go with it through ON DELETE CASCADE.
func (r *RestaurantRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanRestaurant(row pgx.Row) (domain.Restaurant, error) {
	var (
		restaurant domain.Restaurant
		status     string
		tags       []byte
	)
	err := row.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.CuisineType,
		&status,
		&restaurant.AveragePrice,
		&restaurant.Notes,
		&restaurant.PhotoURL,
		&tags,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Restaurant{}, err
		}
		return domain.Restaurant{}, fmt.Errorf("scanning restaurant: %w", err)
	}
	if restaurant.Status, err = domain.ParseStatus(status); err != nil {
		return domain.Restaurant{}, fmt.Errorf("restaurant %s: %w", restaurant.ID, err)
	}
	if restaurant.Tags, err = decodeTags(tags); err != nil {
		return domain.Restaurant{}, fmt.Errorf("restaurant %s: %w", restaurant.ID, err)
	}
	return restaurant, nil
}

func encodeTags(tags domain.TagSet) ([]byte, error) {
	rows := make([]tagRow, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, tagRow{ID: tag.ID, Name: tag.Name, Color: tag.Color})
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("marshaling tags: %w", err)
	}
	return data, nil
}

func decodeTags(data []byte) (domain.TagSet, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var rows []tagRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("unmarshaling tags: %w", err)
	}
	tags := make([]domain.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, domain.Tag{ID: row.ID, Name: row.Name, Color: row.Color})
	}
	return domain.NewTagSet(tags), nil
}
