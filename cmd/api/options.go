package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/queroir/api/internal/restaurant/application"
	"github.com/queroir/api/internal/restaurant/domain"
)

func optionsCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the cuisines and tags present in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(cmd, status)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Restrict to want_to_go or been_there")
	return cmd
}

func runOptions(cmd *cobra.Command, rawStatus string) error {
	ctx := context.Background()

	var status *domain.Status
	if rawStatus != "" {
		parsed, err := domain.ParseStatus(rawStatus)
		if err != nil {
			return err
		}
		status = &parsed
	}

	_, store, err := setup(ctx)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	opts, err := application.NewRestaurantService(store.Restaurants, store.Dishes).Options(ctx, status)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cuisines: %s\n", joinOrNone(opts.Cuisines))
	fmt.Fprintf(cmd.OutOrStdout(), "Tags: %s\n", joinOrNone(opts.Tags))
	return nil
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
