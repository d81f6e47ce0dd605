package execconv

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCommand is returned when no command template is configured.
	ErrEmptyCommand = errors.New("execconv: empty command")

	// ErrCommandNotFound is returned when the converter executable is not found.
	ErrCommandNotFound = errors.New("execconv: command not found")

	// ErrNoArtifact is returned when the converter succeeded but wrote no artifact.
	ErrNoArtifact = errors.New("execconv: converter produced no artifact")
)

// ExitError reports a converter run that did not exit cleanly.
type ExitError struct {
	Frame    int
	Command  string
	ExitCode int // -1 when the process did not exit normally
	Stderr   string
	Err      error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s failed for frame %d (exit status %d)", e.Command, e.Frame, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
