package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/drinkchain/internal/api"
	"github.com/JaimeStill/drinkchain/internal/config"
	"github.com/JaimeStill/drinkchain/internal/infrastructure"
	"github.com/JaimeStill/drinkchain/internal/prompts"
	"github.com/JaimeStill/drinkchain/internal/strategies"
)

var rootCmd = &cobra.Command{
	Use:   "drinkctl",
	Short: "Strategy-driven beverage market and supply assistant",
	Long: `drinkctl synthesizes beverage market trends, supply/demand listings and
advisor replies under a strategy lens. Saved custom strategies persist through
the configured storage provider.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", config.BaseConfigFile, "Path to the base TOML config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at info level to stderr")
}

// app is a started infrastructure and domain for one command invocation.
type app struct {
	cfg    *config.Config
	infra  *infrastructure.Infrastructure
	domain *api.Domain
}

func openApp(cmd *cobra.Command) (*app, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	infra, err := infrastructure.NewWithLogger(cfg, logger)
	if err != nil {
		return nil, err
	}

	runtime, err := api.NewRuntime(cfg, infra)
	if err != nil {
		return nil, err
	}
	domain := api.NewDomain(runtime)

	a := &app{cfg: cfg, infra: infra, domain: domain}

	if err := infra.Start(); err != nil {
		return nil, errors.Join(err, a.Close())
	}
	if err := domain.Start(infra.Lifecycle); err != nil {
		return nil, errors.Join(err, a.Close())
	}
	if err := infra.Lifecycle.WaitForStartup(); err != nil {
		return nil, errors.Join(err, a.Close())
	}

	return a, nil
}

// Close shuts the lifecycle down and reports a shutdown that timed out.
func (a *app) Close() error {
	return a.infra.Lifecycle.Shutdown(a.cfg.ShutdownTimeoutDuration())
}

func withApp(run func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, a.Close())
		}()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return run(ctx, a, cmd, args)
	}
}

// addLensFlags registers flags that select a strategy lens before a command runs.
func addLensFlags(cmd *cobra.Command) {
	cmd.Flags().String("strategy", "", "Strategy: DEFAULT, COST, UNIQUE, QUALITY or CUSTOM")
	cmd.Flags().String("id", "", "Saved custom strategy id")
	cmd.Flags().String("context", "", "Ephemeral custom context (with --strategy CUSTOM)")
	cmd.Flags().StringSlice("factor", nil, "Prioritized factor, repeatable (with --strategy CUSTOM)")
}

// applyLens selects the lens named by the lens flags, if any.
func applyLens(cmd *cobra.Command, sys strategies.System) error {
	typ, _ := cmd.Flags().GetString("strategy")
	id, _ := cmd.Flags().GetString("id")
	custom, _ := cmd.Flags().GetString("context")
	factors, _ := cmd.Flags().GetStringSlice("factor")

	if typ == "" && id == "" && custom == "" && len(factors) == 0 {
		return nil
	}

	sel := strategies.SelectCommand{ID: id, Context: custom, Factors: factors}
	if id != "" {
		if _, err := sys.Find(id); err != nil {
			return fmt.Errorf("strategy %s: %w", id, err)
		}
	}
	if typ != "" {
		s, err := prompts.ParseStrategy(typ)
		if err != nil {
			return fmt.Errorf("%w: %q", err, typ)
		}
		sel.Type = s
	} else {
		// A saved id, a context or bare factors all describe a custom lens.
		sel.Type = prompts.StrategyCustom
	}

	sys.Select(sel)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func commandTimeout(cfg *config.Config) time.Duration {
	return cfg.Synthesis.TimeoutDuration() + 5*time.Second
}
