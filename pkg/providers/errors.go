package providers

import (
	"errors"
	"fmt"
)

// ErrContextOverflow reports that the backend completed successfully
// but its output says the conversation exceeded its context window.
// Callers managing history react to this by shrinking the prompt, not
// by retrying.
var ErrContextOverflow = errors.New("backend context window overflowed")

// SpawnError wraps the OS error raised when the executable could not be
// started at all.
type SpawnError struct {
	Bin string
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Bin, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError reports a subprocess that ran and exited with a non-zero
// status. Stderr carries whatever diagnostics were captured.
type ExitError struct {
	Bin    string
	Status int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with status %d: %s", e.Bin, e.Status, e.Stderr)
	}
	return fmt.Sprintf("%s exited with status %d", e.Bin, e.Status)
}
