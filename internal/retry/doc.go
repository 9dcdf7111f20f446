// Package retry provides automatic retry logic with exponential backoff
// for transient database connection failures.
//
// The pipeline uses it only while establishing the initial connection:
// store round trips made after the pipeline has started are never retried
// silently, since a half-validated run must fail loudly rather than skew.
//
// # Example Usage
//
//	classifier := retry.NewPostgreSQLErrorClassifier()
//	strategy := retry.NewExponentialBackoff(3)
//	executor := retry.NewExecutor(classifier, strategy)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return connectToDatabase(ctx)
//	})
//
// The ErrorClassifier interface determines which errors are transient
// (retryable) versus fatal. The BackoffStrategy interface controls retry
// timing. Both interfaces live in pkg/csvload so they can be implemented
// outside this package.
package retry
