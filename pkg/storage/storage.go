// Package storage provides namespaced key/value persistence for small JSON
// documents, with in-memory, SQL and Azure Blob Storage implementations.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/drinkchain/pkg/database"
	"github.com/JaimeStill/drinkchain/pkg/lifecycle"
)

// Provider names accepted by Config.Provider.
const (
	ProviderMemory = "memory"
	ProviderSQL    = "sql"
	ProviderAzure  = "azure"
)

// System reads and writes whole documents by key.
type System interface {
	// Start registers startup and shutdown hooks with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
	// Read returns the document stored at key. Returns ErrNotFound if absent.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write replaces the document stored at key.
	Write(ctx context.Context, key string, data []byte) error
	// Delete removes the document at key. Returns ErrNotFound if absent.
	Delete(ctx context.Context, key string) error
}

// New creates the storage system selected by cfg.Provider.
// The sql provider requires a database system; the others ignore db.
func New(cfg *Config, db database.System, logger *slog.Logger) (System, error) {
	switch cfg.Provider {
	case ProviderMemory:
		return NewMemory(), nil
	case ProviderSQL:
		if db == nil {
			return nil, fmt.Errorf("sql storage requires a database")
		}
		return NewSQL(db, logger), nil
	case ProviderAzure:
		return NewAzure(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}
