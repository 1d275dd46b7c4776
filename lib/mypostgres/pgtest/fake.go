// Package pgtest provides an in-memory stand-in for a Postgres connection.
package pgtest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MarcGrol/hoopstore/lib/mypostgres"
)

var _ mypostgres.Querier = (*FakeQuerier)(nil)

// FakeQuerier answers every query with the same canned rows or error.
type FakeQuerier struct {
	sync.Mutex
	Rows        [][]any
	Err         error
	SQL         []string
	Args        [][]any
	HadDeadline bool
}

func (f *FakeQuerier) record(c context.Context, sql string, args []any) {
	f.Lock()
	defer f.Unlock()

	f.SQL = append(f.SQL, sql)
	f.Args = append(f.Args, args)
	_, f.HadDeadline = c.Deadline()
}

func (f *FakeQuerier) QueryRow(c context.Context, sql string, args ...any) pgx.Row {
	f.record(c, sql, args)

	if f.Err != nil {
		return fakeRow{err: f.Err}
	}
	if len(f.Rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: f.Rows[0]}
}

func (f *FakeQuerier) Query(c context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record(c, sql, args)

	if f.Err != nil {
		return nil, f.Err
	}
	return &fakeRows{rows: f.Rows, index: -1}, nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanValues(r.values, dest)
}

type fakeRows struct {
	rows  [][]any
	index int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.index++
	return r.index < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanValues(r.rows[r.index], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.index], nil
}

func scanValues(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("expected %d destinations, got %d", len(values), len(dest))
	}
	for i := range values {
		target := reflect.ValueOf(dest[i])
		if target.Kind() != reflect.Pointer {
			return fmt.Errorf("destination %d is not a pointer", i)
		}
		target.Elem().Set(reflect.ValueOf(values[i]))
	}
	return nil
}
