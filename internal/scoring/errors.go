package scoring

import "fmt"

// ScoringError signals a missing or malformed profile. It is fatal for the
// single (job, candidate) pairing only and never aborts a batch.
type ScoringError struct {
	Profile string
	Message string
	Cause   error
}

func (e *ScoringError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring failed: %s profile %s: %v", e.Profile, e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring failed: %s profile %s", e.Profile, e.Message)
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}
