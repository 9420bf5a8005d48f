package main

import (
	"context"
	"os"

	"github.com/queroir/api/internal/config"
	"github.com/queroir/api/internal/infrastructure/backend"
	"github.com/queroir/api/internal/logging"
)

// setup loads configuration, initialises logging and opens the configured store.
func setup(ctx context.Context) (*config.Config, *backend.Backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	store, err := backend.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}
