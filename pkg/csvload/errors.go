package csvload

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	report, err := pipe.Run(ctx, config)
//	if errors.Is(err, csvload.ErrTableNotFound) {
//	    // Handle missing target table
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDetectionFailed indicates the field separator could not be
	// inferred from the input file (empty or unreadable).
	ErrDetectionFailed = errors.New("separator detection failed")

	// ErrConnectionFailed indicates database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrTableNotFound indicates the target table has no columns in the
	// store's catalog, so no schema could be introspected.
	ErrTableNotFound = errors.New("table not found")

	// ErrLoadFailed indicates the store rejected an insert or bulk copy.
	ErrLoadFailed = errors.New("load failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrDetectionFailed):
		return ExitInputError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrTableNotFound):
		return ExitSchemaError
	case errors.Is(err, ErrLoadFailed):
		return ExitLoadFailed
	}

	// Check for common connection error patterns
	errStr := err.Error()
	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	// Cobra reports flag and argument misuse as plain errors
	if isUsageError(errStr) {
		return ExitUsageError
	}

	return ExitGeneralError
}

// isUsageError recognizes cobra/pflag error messages for CLI misuse.
func isUsageError(errStr string) bool {
	patterns := []string{
		"missing required argument",
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"accepts ",
		"required flag",
		"invalid argument",
	}
	for _, p := range patterns {
		if strings.Contains(errStr, p) {
			return true
		}
	}
	return false
}
