// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, storage, telemetry) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/drinkchain/internal/config"
	"github.com/JaimeStill/drinkchain/pkg/database"
	"github.com/JaimeStill/drinkchain/pkg/lifecycle"
	"github.com/JaimeStill/drinkchain/pkg/storage"
	"github.com/JaimeStill/drinkchain/pkg/telemetry"
)

// Infrastructure holds the core systems required by all domain modules.
// Database is nil unless the sql storage provider is configured.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Telemetry telemetry.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithLogger(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	lc := lifecycle.New()

	var db database.System
	if cfg.Storage.Provider == storage.ProviderSQL {
		var err error
		db, err = database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
	}

	store, err := storage.New(&cfg.Storage, db, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	tel, err := telemetry.New(lc.Context(), &cfg.Telemetry, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		Telemetry: tel,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
// The database starts first so migrations complete before storage is used.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	if err := i.Telemetry.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("telemetry start failed: %w", err)
	}
	return nil
}
