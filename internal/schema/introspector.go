package schema

import (
	"context"
	"fmt"

	"github.com/vvka-141/csvload/pkg/csvload"
)

// queryColumns retrieves column name and character length limit for every
// column of the named table, in declared column order.
// Parameter $1: exact table name (case-sensitive, as stored in the catalog).
// character_maximum_length is NULL for types without a length limit.
const queryColumns = `
	SELECT column_name, character_maximum_length
	FROM information_schema.columns
	WHERE table_name = $1
	ORDER BY ordinal_position
`

// Introspect returns the ordered column specs of the named table.
//
// A table that does not exist yields an error wrapping
// csvload.ErrTableNotFound rather than an empty spec list: an empty list
// would make every length check vacuously pass, which is indistinguishable
// from "validation skipped" and must never happen silently.
func Introspect(ctx context.Context, conn csvload.DBConnection, table string) ([]csvload.ColumnSpec, error) {
	rows, err := conn.Query(ctx, queryColumns, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog for table %q: %w", table, err)
	}
	defer rows.Close()

	var specs []csvload.ColumnSpec
	for rows.Next() {
		var spec csvload.ColumnSpec
		if err := rows.Scan(&spec.Name, &spec.MaxLength); err != nil {
			return nil, fmt.Errorf("failed to scan column metadata for table %q: %w", table, err)
		}
		specs = append(specs, spec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog for table %q: %w", table, err)
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("table %q has no columns in the catalog: %w", table, csvload.ErrTableNotFound)
	}

	return specs, nil
}
