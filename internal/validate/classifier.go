package validate

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/csvload/pkg/csvload"
)

// DuplicateChecker reports whether an identical row is already persisted
// in the target table.
type DuplicateChecker interface {
	// Exists returns true if a row matching every field of rec, column by
	// column, already exists. A record with zero fields is never a
	// duplicate: a vacuous predicate would match the whole table, which is
	// never the intended semantics.
	Exists(ctx context.Context, rec csvload.Record) (bool, error)
}

// Verdict is the classification of one record.
type Verdict struct {
	// Eligible is true iff the record produced zero errors and may be
	// loaded.
	Eligible bool

	// Errors holds every problem found; a single record can produce
	// several.
	Errors []csvload.ValidationError
}

// Classifier applies the length and duplicate checks to records.
// Both the validation pass and the loader call Classify, which guarantees
// that the reported error set and the loaded row set always agree.
type Classifier struct {
	byName map[string]csvload.ColumnSpec
	dups   DuplicateChecker
}

// NewClassifier creates a Classifier for the given column specs.
// Panics on a nil duplicate checker: that is a wiring error, not a
// runtime condition.
func NewClassifier(specs []csvload.ColumnSpec, dups DuplicateChecker) *Classifier {
	if dups == nil {
		panic("duplicate checker cannot be nil")
	}

	byName := make(map[string]csvload.ColumnSpec, len(specs))
	for _, spec := range specs {
		byName[spec.Name] = spec
	}

	return &Classifier{byName: byName, dups: dups}
}

// Classify runs both checks on one record and returns its verdict.
// Validation is diagnostic: a failing check adds an error but never stops
// the other check. The returned error reports store failures during the
// duplicate probe, which are fatal to the run, not a property of the
// record.
func (c *Classifier) Classify(ctx context.Context, rec csvload.Record) (Verdict, error) {
	var errs []csvload.ValidationError

	errs = append(errs, c.checkLengths(rec)...)

	dup, err := c.dups.Exists(ctx, rec)
	if err != nil {
		return Verdict{}, fmt.Errorf("duplicate check failed for line %d: %w", rec.Line, err)
	}
	if dup {
		errs = append(errs, csvload.ValidationError{
			Line:    rec.Line,
			Message: fmt.Sprintf("duplicate of an existing row (%s)", strings.Join(rec.Values(), ", ")),
		})
	}

	return Verdict{Eligible: len(errs) == 0, Errors: errs}, nil
}

// checkLengths emits one error per field whose value exceeds its column's
// character limit. Fields unknown to the schema are ignored, and schema
// columns absent from the record are not checked: absence is not a
// violation.
func (c *Classifier) checkLengths(rec csvload.Record) []csvload.ValidationError {
	var errs []csvload.ValidationError

	for _, f := range rec.Fields {
		spec, ok := c.byName[f.Name]
		if !ok || spec.MaxLength == nil {
			continue
		}

		length := utf8.RuneCountInString(f.Value)
		if length > *spec.MaxLength {
			errs = append(errs, csvload.ValidationError{
				Line: rec.Line,
				Message: fmt.Sprintf("field %q is %d characters long, exceeding the limit of %d (value %q)",
					f.Name, length, *spec.MaxLength, f.Value),
			})
		}
	}

	return errs
}
