package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queroir/api/internal/restaurant/application"
	"github.com/queroir/api/internal/selection"
)

func pickCmd() *cobra.Command {
	var raw selection.RawCriteria
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick one restaurant at random among those matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, raw)
		},
	}
	cmd.Flags().StringVar(&raw.SearchText, "search", "", "Case-insensitive text matched against name and address")
	cmd.Flags().StringVar(&raw.CuisineType, "cuisine", "", "Exact cuisine type")
	cmd.Flags().StringVar(&raw.TagName, "tag", "", "Exact tag name")
	cmd.Flags().StringVar(&raw.Status, "status", "", "want_to_go or been_there")
	return cmd
}

func runPick(cmd *cobra.Command, raw selection.RawCriteria) error {
	ctx := context.Background()

	criteria, err := selection.ParseCriteria(raw)
	if err != nil {
		return err
	}

	_, store, err := setup(ctx)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	candidates, total, err := application.NewRestaurantService(store.Restaurants, store.Dishes).List(ctx, criteria)
	if err != nil {
		return err
	}
	picked, ok := selection.PickRandom(candidates, nil)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "No restaurants match (0 of %d).\n", total)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n", picked.Name, picked.Address)
	if picked.CuisineType != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", picked.CuisineType)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  picked from %d of %d\n", len(candidates), total)
	return nil
}
