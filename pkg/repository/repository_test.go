package repository_test

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/JaimeStill/drinkchain/pkg/repository"
)

var (
	errNotFound  = errors.New("not found")
	errDuplicate = errors.New("duplicate")
)

func TestRebind(t *testing.T) {
	tests := []struct {
		name    string
		dialect repository.Dialect
		query   string
		want    string
	}{
		{"question untouched", repository.Question, "SELECT * FROM t WHERE a = ? AND b = ?", "SELECT * FROM t WHERE a = ? AND b = ?"},
		{"dollar numbered", repository.Dollar, "INSERT INTO t(a, b) VALUES (?, ?)", "INSERT INTO t(a, b) VALUES ($1, $2)"},
		{"literal kept", repository.Dollar, "SELECT '?' FROM t WHERE a = ?", "SELECT '?' FROM t WHERE a = $1"},
		{"no placeholders", repository.Dollar, "SELECT 1", "SELECT 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dialect.Rebind(tt.query))
		})
	}
}

func TestTranslate(t *testing.T) {
	other := errors.New("some other error")
	unique := &pgconn.PgError{Code: "23505"}
	foreignKey := &pgconn.PgError{Code: "23503"}
	full := repository.Mapping{NotFound: errNotFound, Duplicate: errDuplicate}

	tests := []struct {
		name    string
		mapping repository.Mapping
		err     error
		want    error
	}{
		{"nil", full, nil, nil},
		{"no rows", full, sql.ErrNoRows, errNotFound},
		{"wrapped no rows", full, fmt.Errorf("read: %w", sql.ErrNoRows), errNotFound},
		{"no rows unmapped", repository.Mapping{Duplicate: errDuplicate}, sql.ErrNoRows, sql.ErrNoRows},
		{"pg unique violation", full, unique, errDuplicate},
		{"pg unique unmapped", repository.Mapping{NotFound: errNotFound}, unique, unique},
		{"other pg error", full, foreignKey, foreignKey},
		{"passthrough", full, other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mapping.Translate(tt.err))
		})
	}
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE items (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO items (key, value) VALUES ('a', 'alpha')`)
	require.NoError(t, err)
	return db
}

func scanValue(s repository.Scanner) (string, error) {
	var v string
	err := s.Scan(&v)
	return v, err
}

func TestOne(t *testing.T) {
	db := openDB(t)

	v, err := repository.One(t.Context(), db, `SELECT value FROM items WHERE key = ?`, scanValue, "a")
	require.NoError(t, err)
	assert.Equal(t, "alpha", v)

	_, err = repository.One(t.Context(), db, `SELECT value FROM items WHERE key = ?`, scanValue, "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestExecOne(t *testing.T) {
	db := openDB(t)

	require.NoError(t, repository.ExecOne(t.Context(), db, `DELETE FROM items WHERE key = ?`, "a"))

	err := repository.ExecOne(t.Context(), db, `DELETE FROM items WHERE key = ?`, "a")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTranslateSQLiteDuplicate(t *testing.T) {
	db := openDB(t)

	_, err := db.Exec(`INSERT INTO items (key, value) VALUES ('a', 'again')`)
	require.Error(t, err)

	mapping := repository.Mapping{NotFound: errNotFound, Duplicate: errDuplicate}
	assert.Equal(t, errDuplicate, mapping.Translate(err))
}
