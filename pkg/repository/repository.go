// Package repository is the thin query layer under the SQL storage provider:
// placeholder rebinding across dialects, single-row helpers and translation of
// driver errors into domain errors.
package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// DB is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type DB interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Scanner interface {
	Scan(dest ...any) error
}

// Dialect selects the bind parameter syntax of a driver.
type Dialect int

const (
	// Question binds with "?" (SQLite).
	Question Dialect = iota
	// Dollar binds with "$1", "$2", ... (PostgreSQL).
	Dollar
)

// Rebind rewrites the "?" placeholders of query into d's syntax. Question
// marks inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if d == Question {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	quoted := false
	for _, r := range query {
		switch {
		case r == '\'':
			quoted = !quoted
			b.WriteRune(r)
		case r == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// One runs query and hands the single resulting row to scan. A query that
// matches nothing yields sql.ErrNoRows from scan.
func One[T any](ctx context.Context, db DB, query string, scan func(Scanner) (T, error), args ...any) (T, error) {
	return scan(db.QueryRowContext(ctx, query, args...))
}

// ExecOne runs a statement that must touch at least one row and reports
// sql.ErrNoRows when it touched none.
func ExecOne(ctx context.Context, db DB, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	switch {
	case err != nil:
		return err
	case n == 0:
		return sql.ErrNoRows
	}
	return nil
}
