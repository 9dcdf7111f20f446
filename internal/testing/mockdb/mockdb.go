// Package mockdb provides an in-memory csvload.DBConnection for unit tests.
//
// Behavior is configured per test through function fields; every statement
// issued is recorded so tests can assert on SQL text, bound parameters,
// and call ordering without a live database.
package mockdb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vvka-141/csvload/pkg/csvload"
)

// Call records one statement issued against the mock connection.
type Call struct {
	Kind    string // "exec", "query", "queryrow", "copyfrom"
	SQL     string
	Args    []any
	Table   string   // copyfrom only
	Columns []string // copyfrom only
	Rows    [][]any  // copyfrom only
}

// Conn is a configurable mock implementing csvload.DBConnection.
// The zero value answers every query with empty results.
type Conn struct {
	ExecFunc     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFunc    func(ctx context.Context, sql string, args ...any) (csvload.Rows, error)
	QueryRowFunc func(ctx context.Context, sql string, args ...any) csvload.Row
	CopyFromFunc func(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)

	Calls []Call
}

var _ csvload.DBConnection = (*Conn)(nil)

func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.Calls = append(c.Calls, Call{Kind: "exec", SQL: sql, Args: args})
	if c.ExecFunc != nil {
		return c.ExecFunc(ctx, sql, args...)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (c *Conn) Query(ctx context.Context, sql string, args ...any) (csvload.Rows, error) {
	c.Calls = append(c.Calls, Call{Kind: "query", SQL: sql, Args: args})
	if c.QueryFunc != nil {
		return c.QueryFunc(ctx, sql, args...)
	}
	return NewRows(), nil
}

func (c *Conn) QueryRow(ctx context.Context, sql string, args ...any) csvload.Row {
	c.Calls = append(c.Calls, Call{Kind: "queryrow", SQL: sql, Args: args})
	if c.QueryRowFunc != nil {
		return c.QueryRowFunc(ctx, sql, args...)
	}
	return Row{Values: []any{0}}
}

func (c *Conn) CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	c.Calls = append(c.Calls, Call{Kind: "copyfrom", Table: table, Columns: columns, Rows: rows})
	if c.CopyFromFunc != nil {
		return c.CopyFromFunc(ctx, table, columns, rows)
	}
	return int64(len(rows)), nil
}

// CallsOfKind returns the recorded calls of one kind, in issue order.
func (c *Conn) CallsOfKind(kind string) []Call {
	var out []Call
	for _, call := range c.Calls {
		if call.Kind == kind {
			out = append(out, call)
		}
	}
	return out
}

// Row is a single mock result row.
type Row struct {
	Values []any
	Err    error
}

func (r Row) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	if len(dest) != len(r.Values) {
		return fmt.Errorf("mockdb: scan expects %d destinations, got %d", len(r.Values), len(dest))
	}
	for i, v := range r.Values {
		if err := assign(dest[i], v); err != nil {
			return err
		}
	}
	return nil
}

// Rows is a static mock result set.
type Rows struct {
	rows [][]any
	pos  int
	err  error
}

// NewRows builds a result set from value tuples.
func NewRows(rows ...[]any) *Rows {
	return &Rows{rows: rows}
}

// NewRowsWithErr builds a result set whose Err() reports the given error
// after iteration.
func NewRowsWithErr(err error, rows ...[]any) *Rows {
	return &Rows{rows: rows, err: err}
}

func (r *Rows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	row := Row{Values: r.rows[r.pos-1]}
	return row.Scan(dest...)
}

func (r *Rows) Err() error { return r.err }

func (r *Rows) Close() {}

// assign copies a mock value into a scan destination, covering the types
// the pipeline actually scans.
func assign(dest, value any) error {
	switch d := dest.(type) {
	case *string:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("mockdb: cannot scan %T into *string", value)
		}
		*d = s
	case *int:
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("mockdb: cannot scan %T into *int", value)
		}
		*d = n
	case *int64:
		switch n := value.(type) {
		case int64:
			*d = n
		case int:
			*d = int64(n)
		default:
			return fmt.Errorf("mockdb: cannot scan %T into *int64", value)
		}
	case **int:
		if value == nil {
			*d = nil
			return nil
		}
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("mockdb: cannot scan %T into **int", value)
		}
		*d = &n
	default:
		return fmt.Errorf("mockdb: unsupported scan destination %T", dest)
	}
	return nil
}
