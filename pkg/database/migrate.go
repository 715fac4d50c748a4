package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations returns the embedded schema migration source.
func Migrations() (source.Driver, error) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("create migration source: %w", err)
	}
	return src, nil
}

// NewMigrator opens a dedicated connection for cfg and binds a migrator to it.
// Closing the migrator closes that connection.
func NewMigrator(cfg *Config) (*migrate.Migrate, error) {
	src, err := Migrations()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open migration connection: %w", err)
	}

	var (
		instance migratedb.Driver
		name     string
	)

	switch cfg.Driver {
	case DriverPostgres:
		instance, err = pgx.WithInstance(db, &pgx.Config{})
		name = "pgx5"
	case DriverSQLite:
		instance, err = sqlite.WithInstance(db, &sqlite.Config{})
		name = "sqlite"
	default:
		db.Close()
		return nil, fmt.Errorf("unsupported migration driver %q", cfg.Driver)
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create %s migration driver: %w", cfg.Driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, instance)
	if err != nil {
		instance.Close()
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// MigrateUp applies all pending migrations. An up-to-date schema is not an error.
func MigrateUp(cfg *Config) error {
	m, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
