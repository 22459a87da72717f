package inference

import (
	"context"
	"fmt"
	"time"
)

// Retry policy for collaborator calls: at most two attempts with exponential
// backoff, after which the pipeline downgrades to dictionary-only extraction.
const (
	MaxAttempts    = 2
	DefaultBackoff = 500 * time.Millisecond
	DefaultTimeout = 20 * time.Second
)

// CollaboratorError signals that the external collaborator failed after all
// retry attempts. Callers downgrade to dictionary-only extraction and set the
// warning flag on the resulting profile instead of failing the request.
type CollaboratorError struct {
	Attempts int
	Cause    error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("inference collaborator failed after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Cause
}

// SuggestWithRetry calls the collaborator with a per-attempt timeout and
// exponential backoff between attempts. The caller's context still bounds the
// whole operation.
func SuggestWithRetry(ctx context.Context, c Collaborator, text string, backoff, timeout time.Duration) ([]string, error) {
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var lastErr error
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		skills, err := c.SuggestSkills(attemptCtx, text)
		cancel()
		if err == nil {
			return skills, nil
		}
		lastErr = err

		if attempt == MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, &CollaboratorError{Attempts: attempt, Cause: ctx.Err()}
		case <-time.After(backoff * time.Duration(1<<(attempt-1))):
		}
	}
	return nil, &CollaboratorError{Attempts: MaxAttempts, Cause: lastErr}
}
