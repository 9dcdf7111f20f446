package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vvka-141/csvload/pkg/csvload"
)

// StoreChecker answers duplicate queries against a live table.
// Identifiers are sanitized with pgx.Identifier; field values are always
// bound as parameters, never interpolated.
type StoreChecker struct {
	conn  csvload.DBConnection
	table string
}

// NewStoreChecker creates a StoreChecker for the given table.
// Panics on a nil connection.
func NewStoreChecker(conn csvload.DBConnection, table string) *StoreChecker {
	if conn == nil {
		panic("db connection cannot be nil")
	}
	return &StoreChecker{conn: conn, table: table}
}

// Exists reports whether a row equal to rec on every field is already
// present. Equality covers exactly the fields the record carries, in file
// order; a record with no fields returns false without touching the
// store.
func (s *StoreChecker) Exists(ctx context.Context, rec csvload.Record) (bool, error) {
	if len(rec.Fields) == 0 {
		return false, nil
	}

	conditions := make([]string, 0, len(rec.Fields))
	args := make([]any, 0, len(rec.Fields))
	for i, f := range rec.Fields {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", pgx.Identifier{f.Name}.Sanitize(), i+1))
		args = append(args, f.Value)
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s",
		pgx.Identifier{s.table}.Sanitize(), strings.Join(conditions, " AND "))

	var count int64
	if err := s.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("querying %s: %w", s.table, err)
	}

	return count > 0, nil
}
