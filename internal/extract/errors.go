package extract

import "fmt"

// ExtractionError signals that input text was empty, too short, or could not
// be parsed into any usable structure. Callers skip the comparison for that
// input; the error is not retried.
type ExtractionError struct {
	Stage      string
	Reason     string
	TokenCount int
	Cause      error
}

func (e *ExtractionError) Error() string {
	msg := fmt.Sprintf("extraction failed at %s: %s", e.Stage, e.Reason)
	if e.TokenCount > 0 {
		msg = fmt.Sprintf("%s (%d tokens)", msg, e.TokenCount)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
