package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/drinkchain/pkg/database"
	"github.com/JaimeStill/drinkchain/pkg/lifecycle"
	"github.com/JaimeStill/drinkchain/pkg/repository"
)

const (
	readQuery   = `SELECT value FROM documents WHERE key = ?`
	deleteQuery = `DELETE FROM documents WHERE key = ?`
	writeQuery  = `
		INSERT INTO documents(key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at`
)

type sqlQueries struct {
	read   string
	write  string
	delete string
}

var keyErrors = repository.Mapping{NotFound: ErrNotFound}

type sqlStore struct {
	db      database.System
	queries sqlQueries
	logger  *slog.Logger
}

// NewSQL creates a storage system over the documents table of db.
// The table is created by the database migrations.
func NewSQL(db database.System, logger *slog.Logger) System {
	dialect := repository.Dollar
	if db.Driver() == database.DriverSQLite {
		dialect = repository.Question
	}

	return &sqlStore{
		db: db,
		queries: sqlQueries{
			read:   dialect.Rebind(readQuery),
			write:  dialect.Rebind(writeQuery),
			delete: dialect.Rebind(deleteQuery),
		},
		logger: logger.With("system", "storage", "provider", ProviderSQL),
	}
}

func (s *sqlStore) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting storage system", "driver", s.db.Driver())
	return nil
}

func (s *sqlStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	value, err := repository.One(ctx, s.db.Connection(), s.queries.read, scanValue, key)
	if err != nil {
		if err = keyErrors.Translate(err); errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrPersistence, key, err)
	}

	return []byte(value), nil
}

func (s *sqlStore) Write(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if _, err := s.db.Connection().ExecContext(ctx, s.queries.write, key, string(data)); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersistence, key, err)
	}

	return nil
}

func (s *sqlStore) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	err := repository.ExecOne(ctx, s.db.Connection(), s.queries.delete, key)
	if err != nil {
		if err = keyErrors.Translate(err); errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: delete %s: %w", ErrPersistence, key, err)
	}

	return nil
}

func scanValue(s repository.Scanner) (string, error) {
	var value string
	err := s.Scan(&value)
	return value, err
}
