package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/csvload/internal/load"
	"github.com/vvka-141/csvload/internal/schema"
	"github.com/vvka-141/csvload/internal/separator"
	"github.com/vvka-141/csvload/internal/source"
	"github.com/vvka-141/csvload/internal/validate"
	"github.com/vvka-141/csvload/pkg/csvload"
)

// ConnectFunc opens a store connection for the given connection string
// and returns the connection plus a cleanup closure.
type ConnectFunc func(ctx context.Context, connectionString string) (csvload.DBConnection, func(), error)

// Runner drives one run end to end.
// Thread-Safety: safe for concurrent Run() calls; the Runner keeps no
// per-run state.
type Runner struct {
	connect ConnectFunc
	logger  csvload.Logger
}

// NewRunner creates a Runner with its dependencies injected.
// Panics on nil dependencies: those are programmer errors that should
// fail loudly at startup, not surface as nil dereferences mid-run.
func NewRunner(connect ConnectFunc, logger csvload.Logger) *Runner {
	if connect == nil {
		panic("connect function cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Runner{connect: connect, logger: logger}
}

// Run executes the pipeline for one file and table.
//
// It always returns a report alongside any error; on failure the report
// carries whatever the pipeline established before aborting, so callers
// can still show partial results.
func (r *Runner) Run(ctx context.Context, cfg csvload.LoadConfig) (_ *csvload.RunReport, err error) {
	report := &csvload.RunReport{
		RunID:  uuid.New(),
		DryRun: cfg.DryRun,
		Stage:  csvload.StageStart,
	}
	start := time.Now()
	defer func() {
		report.Duration = time.Since(start)
		if err != nil {
			report.Stage = csvload.StageAborted
		}
	}()

	advance := func(stage csvload.RunStage) {
		report.Stage = stage
		r.logger.Verbose("Run %s: %s", report.RunID, stage)
	}

	if err := cfg.Validate(); err != nil {
		return report, fmt.Errorf("%w: %v", csvload.ErrInvalidConfig, err)
	}

	r.logger.Verbose("Run %s started for %s into table '%s'", report.RunID, cfg.FilePath, cfg.TableName)

	sep := cfg.Separator
	if sep == 0 {
		detected, err := separator.DetectFile(cfg.FilePath)
		if err != nil {
			return report, err
		}
		sep = detected
		r.logger.Verbose("Detected separator %q", sep)
	}
	report.Separator = sep
	advance(csvload.StageSeparatorDetected)

	records, err := source.ReadFile(cfg.FilePath, sep)
	if err != nil {
		return report, err
	}
	report.RowsRead = len(records)
	r.logger.Verbose("Read %d data rows", len(records))

	conn, cleanup, err := r.connect(ctx, cfg.ConnectionString)
	if err != nil {
		return report, err
	}
	defer cleanup()
	advance(csvload.StageStoreConnected)

	specs, err := schema.Introspect(ctx, conn, cfg.TableName)
	if err != nil {
		return report, err
	}
	r.logger.Verbose("Table '%s' has %d columns", cfg.TableName, len(specs))
	advance(csvload.StageSchemaLoaded)

	classifier := validate.NewClassifier(specs, validate.NewStoreChecker(conn, cfg.TableName))
	loader := load.NewLoader(conn, classifier, cfg.TableName, specs, cfg.DryRun, r.logger).
		WithOnValidated(func() { advance(csvload.StageValidated) })

	outcome, err := loader.Load(ctx, records)
	if outcome != nil {
		report.Errors = outcome.Errors
		report.EligibleRows = outcome.EligibleRows
		report.RowsLoaded = outcome.RowsLoaded
	}
	if err != nil {
		return report, err
	}
	if !cfg.DryRun {
		advance(csvload.StageLoaded)
	}

	advance(csvload.StageDone)
	r.logger.Verbose("Run %s finished: %d loaded, %d errors", report.RunID, report.RowsLoaded, len(report.Errors))
	return report, nil
}
