package load

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vvka-141/csvload/internal/validate"
	"github.com/vvka-141/csvload/pkg/csvload"
)

// Outcome summarizes one load pass over a set of records.
type Outcome struct {
	// Errors holds every validation error found, in record order.
	Errors []csvload.ValidationError

	// EligibleRows is the number of records that passed both checks.
	EligibleRows int

	// RowsLoaded is the number of rows actually written. Zero on dry
	// runs.
	RowsLoaded int64
}

// Loader validates records and writes the survivors to the target table.
type Loader struct {
	conn        csvload.DBConnection
	classifier  *validate.Classifier
	table       string
	specs       []csvload.ColumnSpec
	dryRun      bool
	log         csvload.Logger
	onValidated func()
}

// NewLoader creates a Loader. Panics on nil dependencies.
func NewLoader(conn csvload.DBConnection, classifier *validate.Classifier, table string, specs []csvload.ColumnSpec, dryRun bool, log csvload.Logger) *Loader {
	if conn == nil {
		panic("db connection cannot be nil")
	}
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if log == nil {
		panic("logger cannot be nil")
	}
	return &Loader{
		conn:       conn,
		classifier: classifier,
		table:      table,
		specs:      specs,
		dryRun:     dryRun,
		log:        log,
	}
}

// WithOnValidated returns a new Loader that invokes callback once
// classification of the whole input has finished, before the first
// write. This method does NOT modify the receiver.
func (l *Loader) WithOnValidated(callback func()) *Loader {
	clone := *l
	clone.onValidated = callback
	return &clone
}

// Load classifies every record, then writes the eligible ones.
//
// Classification finishes for the whole input before the first write, so
// the duplicate checks only ever see rows that existed when the run
// started. At most 100 eligible rows are inserted one statement at a
// time; larger sets use COPY.
func (l *Loader) Load(ctx context.Context, records []csvload.Record) (*Outcome, error) {
	outcome := &Outcome{}

	var eligible []csvload.Record
	for _, rec := range records {
		verdict, err := l.classifier.Classify(ctx, rec)
		if err != nil {
			return nil, err
		}
		outcome.Errors = append(outcome.Errors, verdict.Errors...)
		if verdict.Eligible {
			eligible = append(eligible, rec)
		}
	}
	outcome.EligibleRows = len(eligible)

	if l.onValidated != nil {
		l.onValidated()
	}

	if len(eligible) == 0 {
		l.log.Verbose("No eligible rows, nothing to load")
		return outcome, nil
	}

	if l.dryRun {
		l.log.Verbose("Dry run, skipping load of %d eligible rows", len(eligible))
		return outcome, nil
	}

	var (
		loaded int64
		err    error
	)
	if len(eligible) > csvload.BulkLoadThreshold {
		l.log.Verbose("Loading %d rows via COPY", len(eligible))
		loaded, err = l.copyRows(ctx, eligible)
	} else {
		l.log.Verbose("Loading %d rows via INSERT", len(eligible))
		loaded, err = l.insertRows(ctx, eligible)
	}
	outcome.RowsLoaded = loaded
	if err != nil {
		return outcome, fmt.Errorf("%w: %d of %d rows committed: %v",
			csvload.ErrLoadFailed, loaded, len(eligible), err)
	}

	return outcome, nil
}

// insertRows writes one INSERT statement per record.
func (l *Loader) insertRows(ctx context.Context, records []csvload.Record) (int64, error) {
	columns := make([]string, len(l.specs))
	placeholders := make([]string, len(l.specs))
	for i, spec := range l.specs {
		columns[i] = pgx.Identifier{spec.Name}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	statement := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pgx.Identifier{l.table}.Sanitize(),
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "))

	var loaded int64
	for _, rec := range records {
		if _, err := l.conn.Exec(ctx, statement, l.bind(rec)...); err != nil {
			return loaded, fmt.Errorf("inserting line %d: %w", rec.Line, err)
		}
		loaded++
	}
	return loaded, nil
}

// copyRows streams all records through a single COPY operation.
func (l *Loader) copyRows(ctx context.Context, records []csvload.Record) (int64, error) {
	columns := make([]string, len(l.specs))
	for i, spec := range l.specs {
		columns[i] = spec.Name
	}

	rows := make([][]any, len(records))
	for i, rec := range records {
		rows[i] = l.bind(rec)
	}

	return l.conn.CopyFrom(ctx, l.table, columns, rows)
}

// bind maps a record's values onto the table's column order. Schema
// columns the record does not carry become NULL.
func (l *Loader) bind(rec csvload.Record) []any {
	values := make([]any, len(l.specs))
	for i, spec := range l.specs {
		if v, ok := rec.Get(spec.Name); ok {
			values[i] = v
		}
	}
	return values
}
