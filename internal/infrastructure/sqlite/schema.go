package sqlite

import (
	"context"
	"fmt"
)

// EnsureSchema creates the tables if they do not exist.
// Timestamps are stored as unix nanoseconds so ordering is exact.
func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS restaurants (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		address       TEXT NOT NULL,
		cuisine_type  TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL CHECK (status IN ('want_to_go', 'been_there')),
		average_price TEXT NOT NULL DEFAULT '',
		notes         TEXT NOT NULL DEFAULT '',
		photo_url     TEXT NOT NULL DEFAULT '',
		tags          TEXT NOT NULL DEFAULT '[]',
		created_at    INTEGER NOT NULL,
		updated_at    INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS dishes (
		id            TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		rating        INTEGER CHECK (rating BETWEEN 1 AND 5),
		notes         TEXT NOT NULL DEFAULT '',
		photo_url     TEXT NOT NULL DEFAULT '',
		created_at    INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_restaurants_created_at ON restaurants (created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_dishes_restaurant ON dishes (restaurant_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_dishes_created_at ON dishes (created_at DESC);
	`
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
