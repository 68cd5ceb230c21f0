package model

import "fmt"

// MetricsUnavailableError reports that a metric extractor could not decode
// its input. It is a recoverable outcome: the caller proceeds to scoring
// with baseline-only values and surfaces the reason as a warning. Check for
// it with errors.As.
type MetricsUnavailableError struct {
	// Kind names the extractor that failed ("mesh" or "drawing").
	Kind string

	// Reason is a short human-readable description suitable for the warning.
	Reason string

	// Err is the underlying decode error, if any.
	Err error
}

func (e *MetricsUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s metrics unavailable: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s metrics unavailable: %s", e.Kind, e.Reason)
}

func (e *MetricsUnavailableError) Unwrap() error { return e.Err }

// Unavailable constructs a MetricsUnavailableError.
func Unavailable(kind, reason string, err error) *MetricsUnavailableError {
	return &MetricsUnavailableError{Kind: kind, Reason: reason, Err: err}
}
