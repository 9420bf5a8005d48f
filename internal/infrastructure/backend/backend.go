// Package backend opens the store selected by configuration and hands out its repositories.
package backend

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/queroir/api/internal/config"
	mongostore "github.com/queroir/api/internal/infrastructure/mongo"
	"github.com/queroir/api/internal/infrastructure/postgres"
	"github.com/queroir/api/internal/infrastructure/sqlite"
	"github.com/queroir/api/internal/restaurant/application"
)

// Backend bundles the repositories of one store with its lifecycle hooks.
type Backend struct {
	Driver      string
	Restaurants application.RestaurantRepository
	Dishes      application.DishRepository

	ping  func(context.Context) error
	close func(context.Context) error
}

// Open connects to the configured driver and prepares its schema or indexes.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	case config.DriverPostgres:
		client, err := postgres.New(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := client.EnsureSchema(ctx); err != nil {
			_ = client.Close(ctx)
			return nil, err
		}
		return &Backend{
			Driver:      config.DriverPostgres,
			Restaurants: client.Restaurants(),
			Dishes:      client.Dishes(),
			ping:        client.Ping,
			close:       client.Close,
		}, nil
	case config.DriverSQLite:
		client, err := sqlite.New(ctx, cfg.Store.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		if err := client.EnsureSchema(ctx); err != nil {
			_ = client.Close(ctx)
			return nil, err
		}
		return &Backend{
			Driver:      config.DriverSQLite,
			Restaurants: client.Restaurants(),
			Dishes:      client.Dishes(),
			ping:        client.Ping,
			close:       client.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func openMongo(ctx context.Context, cfg *config.Config) (*Backend, error) {
	client, err := mongostore.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.Mongo.Database)
	if err := mongostore.EnsureIndexes(ctx, db, cfg.Mongo.RestaurantCollection, cfg.Mongo.DishCollection); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &Backend{
		Driver:      config.DriverMongo,
		Restaurants: mongostore.NewRestaurantRepository(db, cfg.Mongo.RestaurantCollection),
		Dishes:      mongostore.NewDishRepository(db, cfg.Mongo.DishCollection),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: client.Disconnect,
	}, nil
}

// Ping checks the store is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	if err := b.ping(ctx); err != nil {
		return fmt.Errorf("%s ping: %w", b.Driver, err)
	}
	return nil
}

// Close releases the store connection.
func (b *Backend) Close(ctx context.Context) error {
	if err := b.close(ctx); err != nil {
		return fmt.Errorf("%s close: %w", b.Driver, err)
	}
	return nil
}
