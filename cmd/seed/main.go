package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/queroir/api/internal/config"
	"github.com/queroir/api/internal/infrastructure/backend"
	"github.com/queroir/api/internal/logging"
	"github.com/queroir/api/internal/restaurant/application"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type seedOptions struct {
	file   string
	drop   bool
	dryRun bool
}

func main() {
	var opts seedOptions
	root := &cobra.Command{
		Use:          "queroir-seed",
		Short:        "Load restaurant fixtures into the configured store",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	root.Flags().StringVar(&opts.file, "file", "", "YAML fixture file (defaults to the built-in fixtures)")
	root.Flags().BoolVar(&opts.drop, "drop", false, "Delete every existing restaurant and its dishes first")
	root.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Parse and print the fixtures without writing")
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts seedOptions) error {
	ctx := context.Background()

	raw := defaultFixtures
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return fmt.Errorf("read fixtures: %w", err)
		}
		raw = data
	}
	fixtures, err := parseFixtures(raw)
	if err != nil {
		return err
	}
	if opts.dryRun {
		for _, r := range fixtures.Restaurants {
			fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %d tags, %d dishes\n", r.Name, r.Status, len(r.Tags), len(r.Dishes))
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: os.Stderr})

	store, err := backend.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	seeder := newSeeder(
		application.NewRestaurantService(store.Restaurants, store.Dishes),
		application.NewDishService(store.Restaurants, store.Dishes),
	)
	if opts.drop {
		removed, err := seeder.dropAll(ctx)
		if err != nil {
			return err
		}
		logging.Info().Int("restaurants", removed).Msg("dropped existing data")
	}
	summary, err := seeder.load(ctx, fixtures)
	if err != nil {
		return err
	}
	logging.Info().
		Str("store", store.Driver).
		Int("restaurants", summary.restaurants).
		Int("dishes", summary.dishes).
		Msg("seed complete")
	return nil
}
