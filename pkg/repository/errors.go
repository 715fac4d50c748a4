package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// Mapping names the domain errors that database failures translate to. A nil
// field leaves that class of failure untouched.
type Mapping struct {
	NotFound  error
	Duplicate error
}

// Translate maps err through m. Missing rows become NotFound; a unique
// violation from either PostgreSQL or SQLite becomes Duplicate.
func (m Mapping) Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case m.NotFound != nil && errors.Is(err, sql.ErrNoRows):
		return m.NotFound
	case m.Duplicate != nil && isUniqueViolation(err):
		return m.Duplicate
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
