package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/drinkchain/internal/prompts"
	"github.com/JaimeStill/drinkchain/internal/strategies"
)

var strategiesCmd = &cobra.Command{
	Use:     "strategies",
	Aliases: []string{"strategy"},
	Short:   "Manage saved custom strategies",
}

var strategiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved custom strategies",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tFACTORS")
		for _, c := range a.domain.Strategies.List() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, prompts.FactorContext(c.Factors))
		}
		return tw.Flush()
	}),
}

var strategiesCreateCmd = &cobra.Command{
	Use:   "create NAME FACTOR [FACTOR [FACTOR]]",
	Short: "Save a custom strategy from up to three prioritized factors",
	Args:  cobra.RangeArgs(2, 1+strategies.FactorSlots),
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		c, active, err := a.domain.Strategies.Save(ctx, strategies.CreateCommand{
			Name:    args[0],
			Factors: args[1:],
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), strategies.SavedResponse{Strategy: c, Active: active})
	}),
}

var strategiesDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a saved custom strategy",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		if _, err := a.domain.Strategies.Remove(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	}),
}

var directiveCmd = &cobra.Command{
	Use:   "directive",
	Short: "Print the directive for a strategy lens",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		if err := applyLens(cmd, a.domain.Strategies); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.domain.Strategies.Directive())
		return nil
	}),
}

func init() {
	strategiesCmd.AddCommand(strategiesListCmd, strategiesCreateCmd, strategiesDeleteCmd)
	addLensFlags(directiveCmd)
	rootCmd.AddCommand(strategiesCmd, directiveCmd)
}
