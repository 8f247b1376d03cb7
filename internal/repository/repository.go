// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch athletics data,
// abstracting SQL logic away from the service layer.
//
// Every listing only counts "valid" results: rows whose mark is
// non-NULL and non-empty. DNS/DNF/DQ rows carry an empty mark and are
// invisible to the API.
package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories use. Tests swap in
// a pgxmock pool through the same interface.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// validMark is the predicate shared by every results query.
const validMark = "r.mark IS NOT NULL AND r.mark != ''"

// Repositories is a container for all repository instances.
type Repositories struct {
	Competitions *CompetitionsRepository
	Athletes     *AthletesRepository
	Results      *ResultsRepository
	Reference    *ReferenceRepository
	Stats        *StatsRepository
	Singapore    *SingaporeRepository
}

// NewRepositories constructs the repository container over a shared
// connection. Production passes the pgxpool; tests pass a mock.
func NewRepositories(db DB) *Repositories {
	return &Repositories{
		Competitions: &CompetitionsRepository{db: db},
		Athletes:     &AthletesRepository{db: db},
		Results:      &ResultsRepository{db: db},
		Reference:    &ReferenceRepository{db: db},
		Stats:        &StatsRepository{db: db},
		Singapore:    &SingaporeRepository{db: db},
	}
}

// limitOffset returns a LIMIT/OFFSET clause with placeholders numbered
// after the n args already bound.
func limitOffset(n int) string {
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2)
}

// isTransient reports whether an error is a transport-level failure
// worth one retry: the driver says the statement never reached the
// server, or the failure was a plain network error.
func isTransient(err error) bool {
	if pgconn.SafeToRetry(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// queryRows runs db.Query with a single retry on transient transport
// errors. Server-side errors (bad SQL, constraint violations) are
// never retried.
func queryRows(ctx context.Context, db DB, sql string, args ...any) (pgx.Rows, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil && isTransient(err) {
		rows, err = db.Query(ctx, sql, args...)
	}
	return rows, err
}

// collect runs a query and scans every row into T by column name.
func collect[T any](ctx context.Context, db DB, sql string, args ...any) ([]T, error) {
	rows, err := queryRows(ctx, db, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

// queryScalar runs a single-column, single-row query (COUNT and
// friends) with the same retry behavior as collect.
func queryScalar[T any](ctx context.Context, db DB, sql string, args ...any) (T, error) {
	rows, err := queryRows(ctx, db, sql, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	return pgx.CollectOneRow(rows, pgx.RowTo[T])
}
