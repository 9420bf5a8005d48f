package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/queroir/api/internal/logging"
	"github.com/queroir/api/internal/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, store, err := setup(ctx)
	if err != nil {
		return err
	}
	logging.Info().Str("version", version).Str("store", store.Driver).Msg("starting queroir api")

	return server.New(cfg, store).Run(ctx)
}
