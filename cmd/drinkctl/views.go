package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/drinkchain/internal/supply"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Synthesize a market trend analysis under a strategy lens",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		if err := applyLens(cmd, a.domain.Strategies); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, commandTimeout(a.cfg))
		defer cancel()

		return printJSON(cmd.OutOrStdout(), a.domain.Trends.Refresh(ctx))
	}),
}

var supplyCmd = &cobra.Command{
	Use:   "supply",
	Short: "Synthesize and list supply/demand listings under a strategy lens",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		if err := applyLens(cmd, a.domain.Strategies); err != nil {
			return err
		}

		category, _ := cmd.Flags().GetString("category")
		filterFlag, _ := cmd.Flags().GetString("type")

		filter, err := supply.ParseTypeFilter(filterFlag)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, commandTimeout(a.cfg))
		defer cancel()

		batch := a.domain.Supply.Refresh(ctx, category)
		if batch.Recovered {
			fmt.Fprintln(cmd.ErrOrStderr(), "supply synthesis unavailable; no listings")
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tPRODUCT\tCOMPANY\tPRICE\tLOCATION\tVERIFIED\tDAYS LEFT")
		for _, e := range a.domain.Supply.List(filter) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\t%d\n",
				e.Type, e.Product, e.CompanyName, e.Price, e.Location, e.Verified, e.RemainingDays)
		}
		return tw.Flush()
	}),
}

func init() {
	addLensFlags(trendsCmd)
	addLensFlags(supplyCmd)
	supplyCmd.Flags().String("category", "", "Product category (default: general)")
	supplyCmd.Flags().String("type", "ALL", "Filter: ALL, SUPPLY or DEMAND")
	rootCmd.AddCommand(trendsCmd, supplyCmd)
}
