package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Store     StoreConfig     `koanf:"store"`
	Mongo     MongoConfig     `koanf:"mongo"`
	Logging   LoggingConfig   `koanf:"logging"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	AllowedOrigins  []string      `koanf:"allowed_origins"`
	Timezone        string        `koanf:"timezone"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Driver      string `koanf:"driver"`
	DatabaseURL string `koanf:"database_url"`
	SQLiteDSN   string `koanf:"sqlite_dsn"`
}

type MongoConfig struct {
	URI                  string        `koanf:"uri"`
	Database             string        `koanf:"database"`
	ConnectTimeout       time.Duration `koanf:"connect_timeout"`
	RestaurantCollection string        `koanf:"restaurant_collection"`
	DishCollection       string        `koanf:"dish_collection"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// RateLimitConfig caps write requests per client IP. Requests <= 0 disables the limiter.
type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			AllowedOrigins:  []string{"*"},
			Timezone:        "America/Sao_Paulo",
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Driver:    DriverMongo,
			SQLiteDSN: "sqlite://queroir.db",
		},
		Mongo: MongoConfig{
			URI:                  "mongodb://mongo:27017",
			Database:             "queroir",
			ConnectTimeout:       10 * time.Second,
			RestaurantCollection: "restaurants",
			DishCollection:       "dishes",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		RateLimit: RateLimitConfig{
			Requests: 60,
			Window:   time.Minute,
		},
	}
}

// Validate checks that the selected driver has what it needs to connect.
func (c *Config) Validate() error {
	var errs []error

	switch c.Store.Driver {
	case DriverMongo:
		if strings.TrimSpace(c.Mongo.URI) == "" {
			errs = append(errs, errors.New("MONGO_URI is required for the mongo driver"))
		}
		if strings.TrimSpace(c.Mongo.Database) == "" {
			errs = append(errs, errors.New("MONGO_DB is required for the mongo driver"))
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Store.DatabaseURL) == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	case DriverSQLite:
		if !strings.HasPrefix(c.Store.SQLiteDSN, "sqlite://") {
			errs = append(errs, fmt.Errorf("SQLITE_DSN must start with sqlite://, got %q", c.Store.SQLiteDSN))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q (want mongo, postgres or sqlite)", c.Store.Driver))
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format))
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if c.RateLimit.Requests > 0 && c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled"))
	}

	return errors.Join(errs...)
}

// Location resolves Server.Timezone, falling back to UTC-3.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return time.FixedZone("BRT", -3*60*60), fmt.Errorf("loading timezone %s: %w", c.Server.Timezone, err)
	}
	return loc, nil
}
