package mypostgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the part of *pgxpool.Pool the stores use.
type Querier interface {
	QueryRow(c context.Context, sql string, args ...any) pgx.Row
	Query(c context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Connect opens a pool and verifies it with a ping bounded by timeout.
func Connect(c context.Context, databaseURL string, timeout time.Duration) (*pgxpool.Pool, func(), error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error parsing database url: %s", err)
	}
	cfg.ConnConfig.ConnectTimeout = timeout

	pool, err := pgxpool.NewWithConfig(c, cfg)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error creating database pool: %s", err)
	}

	pingCtx, cancel := context.WithTimeout(c, timeout)
	defer cancel()

	err = pool.Ping(pingCtx)
	if err != nil {
		pool.Close()
		return nil, func() {}, fmt.Errorf("error connecting to database: %s", err)
	}

	return pool, pool.Close, nil
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Describe turns a query failure into an error that names the likely cause.
func Describe(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("database query timed out: %w", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UndefinedTable, pgerrcode.UndefinedColumn:
			return fmt.Errorf("database schema mismatch (%s): %w", pgErr.Code, err)
		case pgerrcode.InsufficientPrivilege:
			return fmt.Errorf("database role not permitted (%s): %w", pgErr.Code, err)
		case pgerrcode.InvalidAuthorizationSpecification, pgerrcode.InvalidPassword:
			return fmt.Errorf("database credentials rejected (%s): %w", pgErr.Code, err)
		}
		return fmt.Errorf("database error (%s): %w", pgErr.Code, err)
	}

	return fmt.Errorf("database error: %w", err)
}
