package csvload_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/csvload/pkg/csvload"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, csvload.ExitSuccess},
		{"general error", errors.New("something went wrong"), csvload.ExitGeneralError},
		{"invalid config", csvload.ErrInvalidConfig, csvload.ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("TableName is required: %w", csvload.ErrInvalidConfig), csvload.ExitConfigError},
		{"detection failed", csvload.ErrDetectionFailed, csvload.ExitInputError},
		{"connection failed", csvload.ErrConnectionFailed, csvload.ExitConnectionError},
		{"table not found", fmt.Errorf("table \"people\": %w", csvload.ErrTableNotFound), csvload.ExitSchemaError},
		{"load failed", fmt.Errorf("insert rejected: %w", csvload.ErrLoadFailed), csvload.ExitLoadFailed},
		{"connection refused pattern", errors.New("dial tcp: connection refused"), csvload.ExitConnectionError},
		{"no such host pattern", errors.New("lookup db.internal: no such host"), csvload.ExitConnectionError},
		{"unknown flag", errors.New("unknown flag --foo"), csvload.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), csvload.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), csvload.ExitUsageError},
		{"missing argument", errors.New("missing required argument: <file>"), csvload.ExitUsageError},
		{"required flag", errors.New("required flag \"table\" not set"), csvload.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--port\""), csvload.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := csvload.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
