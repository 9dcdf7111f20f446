package csvload

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Run completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitConnectionError = 11 // Failed to connect to database
	ExitSchemaError     = 12 // Target table not found or catalog unreadable
	ExitLoadFailed      = 13 // Store rejected an insert or bulk copy
	ExitInputError      = 14 // Input file unreadable or separator undetectable
)

const (
	// BulkLoadThreshold is the eligible-row count above which the loader
	// switches from per-row inserts to the binary COPY path. Exactly this
	// many rows still uses the insert path.
	BulkLoadThreshold = 100

	// DefaultTimeout is the default global timeout for a run.
	// Catastrophic failure protection, not normal timeout control.
	DefaultTimeout = 3 * time.Minute

	// DefaultRetryInitialDelay is the default initial delay before the first
	// connection retry attempt.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between connection
	// retry attempts.
	DefaultRetryMaxDelay = 1 * time.Minute

	// DefaultRetryMaxAttempts is the default maximum number of connection
	// retry attempts.
	DefaultRetryMaxAttempts = 3
)
