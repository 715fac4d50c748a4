package database_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/drinkchain/pkg/database"
	"github.com/JaimeStill/drinkchain/pkg/lifecycle"
)

func sqliteConfig(t *testing.T) database.Config {
	t.Helper()
	cfg := database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	return cfg
}

func TestNewSetsPoolParams(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.MaxOpenConns = 42

	sys, err := database.New(&cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	conn := sys.Connection()
	defer conn.Close()

	if got := conn.Stats().MaxOpenConnections; got != 42 {
		t.Errorf("MaxOpenConnections = %d, want 42", got)
	}
	if sys.Driver() != database.DriverSQLite {
		t.Errorf("Driver() = %s, want sqlite", sys.Driver())
	}
}

func TestMigrateUpIdempotent(t *testing.T) {
	cfg := sqliteConfig(t)

	for i := range 2 {
		if err := database.MigrateUp(&cfg); err != nil {
			t.Fatalf("MigrateUp run %d: %v", i+1, err)
		}
	}
}

func TestStartAutoMigrates(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.AutoMigrate = true

	sys, err := database.New(&cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := lc.WaitForStartup(); err != nil {
		t.Fatalf("WaitForStartup() error = %v", err)
	}

	var n int
	err = sys.Connection().QueryRowContext(context.Background(), "SELECT COUNT(*) FROM documents").Scan(&n)
	if err != nil {
		t.Fatalf("documents table missing: %v", err)
	}
	if n != 0 {
		t.Errorf("documents rows = %d, want 0", n)
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestNewMigratorRejectsUnknownDriver(t *testing.T) {
	cfg := database.Config{Driver: "oracle"}
	if _, err := database.NewMigrator(&cfg); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
