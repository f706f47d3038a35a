package pipeline

import "fmt"

// InvariantViolation reports a computed result that violates a structural
// expectation, e.g. a rectangle with the wrong point count
type InvariantViolation struct {
	Check   string
	Message string
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation in %s check: %s", e.Check, e.Message)
}

// StageOutputMissing reports a collaborator that returned no output where a
// value was required
type StageOutputMissing struct {
	Stage Stage
}

func (e StageOutputMissing) Error() string {
	return fmt.Sprintf("stage %s produced no output where a value was required", e.Stage)
}

// LoadFailure reports a persisted snapshot that could not be read back
type LoadFailure struct {
	Path  string
	Cause error
}

func (e LoadFailure) Error() string {
	return fmt.Sprintf("could not reload snapshot %s: %v", e.Path, e.Cause)
}

func (e LoadFailure) Unwrap() error {
	return e.Cause
}
