package session

import "fmt"

// StateError marks a sequencing misuse of the session API, such as
// submitting with no current question or finalizing an incomplete session.
// It is fatal to the operation but never corrupts session state.
type StateError struct {
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("session %s: %s", e.Op, e.Reason)
}

func stateErrorf(op, format string, args ...any) *StateError {
	return &StateError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
