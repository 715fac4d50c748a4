package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/drinkchain/internal/config"
	"github.com/JaimeStill/drinkchain/pkg/database"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the DrinkChain database schema",
		Long: `migrate runs the schema migrations embedded in the DrinkChain binary
against the database named by config.toml. --driver and --path override the
configured connection for one run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("config", "c", config.BaseConfigFile, "Path to the base TOML config file")
	root.PersistentFlags().String("driver", "", "Database driver (pgx or sqlite)")
	root.PersistentFlags().String("path", "", "SQLite database path")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *migrate.Migrate, _ []string) error {
				if err := ignoreNoChange(m.Up()); err != nil {
					return fmt.Errorf("apply migrations: %w", err)
				}
				return printVersion(cmd, m)
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert every applied migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *migrate.Migrate, _ []string) error {
				if err := ignoreNoChange(m.Down()); err != nil {
					return fmt.Errorf("revert migrations: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema reverted")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "steps N",
			Short: "Move N migrations up, or down when N is negative",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(func(cmd *cobra.Command, m *migrate.Migrate, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil || n == 0 {
					return fmt.Errorf("steps must be a non-zero integer, got %q", args[0])
				}
				if err := ignoreNoChange(m.Steps(n)); err != nil {
					return fmt.Errorf("step migrations: %w", err)
				}
				return printVersion(cmd, m)
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *migrate.Migrate, _ []string) error {
				return printVersion(cmd, m)
			}),
		},
		&cobra.Command{
			Use:   "force V",
			Short: "Record version V without running migrations, clearing a dirty flag",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(func(cmd *cobra.Command, m *migrate.Migrate, args []string) error {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("version must be an integer, got %q", args[0])
				}
				if err := m.Force(v); err != nil {
					return fmt.Errorf("force version: %w", err)
				}
				return printVersion(cmd, m)
			}),
		},
	)

	return root
}

func withMigrator(run func(*cobra.Command, *migrate.Migrate, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		db, err := databaseConfig(cmd)
		if err != nil {
			return err
		}

		m, err := database.NewMigrator(db)
		if err != nil {
			return err
		}
		defer m.Close()

		return run(cmd, m, args)
	}
}

// databaseConfig loads the database section and applies the connection flags.
func databaseConfig(cmd *cobra.Command) (*database.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db := cfg.Database
	if v, _ := cmd.Flags().GetString("driver"); v != "" {
		db.Driver = v
	}
	if v, _ := cmd.Flags().GetString("path"); v != "" {
		db.Path = v
	}
	return &db, nil
}

func printVersion(cmd *cobra.Command, m *migrate.Migrate) error {
	v, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
		return nil
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	}

	if dirty {
		fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty)\n", v)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "version %d\n", v)
	return nil
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
