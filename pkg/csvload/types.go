package csvload

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LoadConfig contains all parameters needed to run the validation-and-load
// pipeline against a single delimited file.
type LoadConfig struct {
	// FilePath is the path to the delimited input file (header row first).
	FilePath string

	// TableName is the target table, matched case-sensitively against the
	// store's catalog.
	TableName string

	// ConnectionString is the PostgreSQL connection string (URI or
	// keyword/value format).
	ConnectionString string

	// Separator forces a field separator instead of auto-detection.
	// Zero means detect from the header line (comma or semicolon).
	Separator rune

	// DryRun stops the pipeline after validation; nothing is loaded.
	DryRun bool

	// Timeout is the global timeout for the entire run
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the LoadConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.FilePath == "" {
		errs = append(errs, fmt.Errorf("FilePath is required: %w", ErrInvalidConfig))
	}

	if c.TableName == "" {
		errs = append(errs, fmt.Errorf("TableName is required: %w", ErrInvalidConfig))
	}

	if c.ConnectionString == "" {
		errs = append(errs, fmt.Errorf("ConnectionString is required: %w", ErrInvalidConfig))
	}

	if c.Separator != 0 && c.Separator != ',' && c.Separator != ';' {
		errs = append(errs, fmt.Errorf("separator must be ',' or ';': %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ConnectionConfig represents parsed connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// Additional connection parameters
	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string
}

// ColumnSpec is the schema metadata for one target-table column, in the
// table's declared column order. MaxLength is nil for types without a
// character-length limit (text, integer, ...); an unbounded column never
// produces a length violation.
type ColumnSpec struct {
	Name      string
	MaxLength *int
}

// Field is one named value of a parsed record, as it appears in the file.
type Field struct {
	Name  string
	Value string
}

// Record is an ordered mapping from column name to raw string value for one
// data line of the input file. Field order mirrors the file's header order,
// not the table's column order; the two are reconciled only at load time.
type Record struct {
	// Line is the 1-based data line number. The header line is consumed by
	// parsing and is not numbered.
	Line int

	Fields []Field
}

// Get returns the value of the named field and whether it is present.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns the record's raw values in file order.
func (r Record) Values() []string {
	vals := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		vals[i] = f.Value
	}
	return vals
}

// ValidationError is a single per-record problem found during validation.
// A record can produce zero, one, or many of these.
type ValidationError struct {
	// Line is the 1-based data line number the problem was found on.
	Line int

	// Message is the human-readable description, including the field name
	// and the offending value where applicable.
	Message string
}

// String formats the error as one report line.
func (e ValidationError) String() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// RunStage identifies how far a pipeline run progressed. Stages advance
// strictly in declaration order; a fatal error moves the run to
// StageAborted.
type RunStage string

const (
	StageStart             RunStage = "start"
	StageSeparatorDetected RunStage = "separator detected"
	StageStoreConnected    RunStage = "store connected"
	StageSchemaLoaded      RunStage = "schema loaded"
	StageValidated         RunStage = "validated"
	StageLoaded            RunStage = "loaded"
	StageDone              RunStage = "done"
	StageAborted           RunStage = "aborted"
)

// RunReport summarizes one pipeline run.
type RunReport struct {
	// RunID uniquely identifies this run in logs and reports.
	RunID uuid.UUID

	// Separator is the detected (or forced) field separator.
	Separator rune

	// RowsRead is the number of data lines parsed from the file.
	RowsRead int

	// Errors is the full set of validation errors, in line order.
	Errors []ValidationError

	// EligibleRows is the number of records with zero validation errors.
	EligibleRows int

	// RowsLoaded is the number of rows committed to the target table.
	// Always zero for dry runs.
	RowsLoaded int64

	// Stage is the last pipeline stage reached. StageDone on success,
	// StageAborted when the run ended on a fatal error.
	Stage RunStage

	// DryRun records whether the load step was skipped.
	DryRun bool

	// Duration is the total wall-clock time of the run.
	Duration time.Duration
}
