package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema creates the tables if they do not exist. It is safe to run on every start.
func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS restaurants (
    id            UUID PRIMARY KEY,
    name          TEXT NOT NULL,
    address       TEXT NOT NULL,
    cuisine_type  TEXT NOT NULL DEFAULT '',
    status        TEXT NOT NULL CHECK (status IN ('want_to_go', 'been_there')),
    average_price TEXT NOT NULL DEFAULT '',
    notes         TEXT NOT NULL DEFAULT '',
    photo_url     TEXT NOT NULL DEFAULT '',
    tags          JSONB NOT NULL DEFAULT '[]',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS dishes (
    id            UUID PRIMARY KEY,
    restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
    name          TEXT NOT NULL,
    rating        SMALLINT CHECK (rating BETWEEN 1 AND 5),
    notes         TEXT NOT NULL DEFAULT '',
    photo_url     TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_restaurants_created_at ON restaurants (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_dishes_restaurant ON dishes (restaurant_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_dishes_created_at ON dishes (created_at DESC);
`
	if _, err := c.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
