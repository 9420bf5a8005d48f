package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/queroir/api/internal/restaurant/domain"
)

const restaurantColumns = `id, name, address, cuisine_type, status, average_price, notes, photo_url, tags, created_at, updated_at`

type RestaurantRepository struct {
	db *sql.DB
}

type tagRow struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *RestaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants ORDER BY created_at DESC, id`)
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
	row := r.db.QueryRowContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = ?`, id)
	restaurant, err := scanRestaurant(row)
	if errors.Is(err, sql.ErrNoRows) {
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
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO restaurants (`+restaurantColumns+`)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		restaurant.ID,
		restaurant.Name,
		restaurant.Address,
		restaurant.CuisineType,
		restaurant.Status.String(),
		restaurant.AveragePrice,
		restaurant.Notes,
		restaurant.PhotoURL,
		tags,
		restaurant.CreatedAt.UnixNano(),
		restaurant.UpdatedAt.UnixNano(),
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
	result, err := r.db.ExecContext(ctx, `
	UPDATE restaurants SET
		name = ?,
		address = ?,
		cuisine_type = ?,
		status = ?,
		average_price = ?,
		notes = ?,
		photo_url = ?,
		tags = ?,
		updated_at = ?
	WHERE id = ?`,
		restaurant.Name,
		restaurant.Address,
		restaurant.CuisineType,
		restaurant.Status.String(),
		restaurant.AveragePrice,
		restaurant.Notes,
		restaurant.PhotoURL,
		tags,
		restaurant.UpdatedAt.UnixNano(),
		restaurant.ID,
	)
	if err != nil {
		return fmt.Errorf("updating restaurant: %w", err)
	}
	return requireRow(result)
}

func (r *RestaurantRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM restaurants WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting restaurant: %w", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanRestaurant(row scanner) (domain.Restaurant, error) {
	var (
		restaurant           domain.Restaurant
		status, tags         string
		createdAt, updatedAt int64
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
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
	restaurant.CreatedAt = time.Unix(0, createdAt).UTC()
	restaurant.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return restaurant, nil
}

func encodeTags(tags domain.TagSet) (string, error) {
	rows := make([]tagRow, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, tagRow{ID: tag.ID, Name: tag.Name, Color: tag.Color})
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("marshaling tags: %w", err)
	}
	return string(data), nil
}

func decodeTags(data string) (domain.TagSet, error) {
	if data == "" {
		return nil, nil
	}
	var rows []tagRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("unmarshaling tags: %w", err)
	}
	tags := make([]domain.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, domain.Tag{ID: row.ID, Name: row.Name, Color: row.Color})
	}
	return domain.NewTagSet(tags), nil
}
