package config

import "fmt"

// FailurePolicy decides how the driver reacts to a failed trainer
// invocation (non-zero exit, spawn error or timeout).
type FailurePolicy int

const (
	// FailureIgnore logs the failure and moves on to the next episode.
	FailureIgnore FailurePolicy = iota

	// FailureAbort stops the run on the first failure.
	FailureAbort

	// FailureRetry re-invokes the same episode up to Run.Retries more
	// times, then aborts if every attempt failed.
	FailureRetry
)

// ParseFailurePolicy converts a plan-file string into a FailurePolicy.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch s {
	case "ignore":
		return FailureIgnore, nil
	case "abort":
		return FailureAbort, nil
	case "retry":
		return FailureRetry, nil
	default:
		return FailureIgnore, fmt.Errorf("invalid on_failure policy %q: must be 'ignore', 'abort', or 'retry'", s)
	}
}

// String implements fmt.Stringer.
func (p FailurePolicy) String() string {
	switch p {
	case FailureIgnore:
		return "ignore"
	case FailureAbort:
		return "abort"
	case FailureRetry:
		return "retry"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}
