package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/csvload/pkg/csvload"
)

// PoolAdapter adapts *pgxpool.Pool to implement the csvload.DBConnection
// interface. This decouples the internal implementation from the public
// API, preventing direct exposure of pgx-specific types.
//
// Thread-Safety: Safe for concurrent use (pgxpool.Pool is thread-safe).
type PoolAdapter struct {
	pool *pgxpool.Pool
}

// NewPoolAdapter creates a new PoolAdapter wrapping the given pool.
func NewPoolAdapter(pool *pgxpool.Pool) csvload.DBConnection {
	return &PoolAdapter{pool: pool}
}

// Exec executes a query without returning any rows.
func (p *PoolAdapter) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return p.pool.Exec(ctx, sql, args...)
}

// Query executes a query that returns multiple rows.
func (p *PoolAdapter) Query(ctx context.Context, sql string, args ...any) (csvload.Rows, error) {
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &rowsAdapter{rows: rows}, nil
}

// QueryRow executes a query that is expected to return at most one row.
func (p *PoolAdapter) QueryRow(ctx context.Context, sql string, args ...any) csvload.Row {
	return &rowAdapter{row: p.pool.QueryRow(ctx, sql, args...)}
}

// CopyFrom streams rows into the named table via the COPY protocol.
// Identifiers are sanitized by pgx.Identifier on the way in.
func (p *PoolAdapter) CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	return p.pool.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
}

// rowAdapter adapts pgx.Row to implement csvload.Row.
type rowAdapter struct {
	row interface{ Scan(...any) error }
}

// Scan reads the values from the row into dest values.
func (r *rowAdapter) Scan(dest ...any) error {
	return r.row.Scan(dest...)
}

// rowsAdapter adapts pgx.Rows to implement csvload.Rows.
type rowsAdapter struct {
	rows pgx.Rows
}

func (r *rowsAdapter) Next() bool             { return r.rows.Next() }
func (r *rowsAdapter) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *rowsAdapter) Err() error             { return r.rows.Err() }
func (r *rowsAdapter) Close()                 { r.rows.Close() }

// Verify PoolAdapter implements DBConnection at compile time
var _ csvload.DBConnection = (*PoolAdapter)(nil)
