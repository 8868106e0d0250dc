package script

import (
	"errors"
	"fmt"
)

// Sentinel errors for script operations.
var (
	// ErrUnknownOp indicates a step whose operation is not write, erase, sharpen or edit.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrEmptyScript indicates a script with no steps.
	ErrEmptyScript = errors.New("script has no steps")
)

// StepError reports the step a script failed on.
type StepError struct {
	Index int   // Zero-based position of the step
	Step  Step  // The offending step
	Err   error // Underlying error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Step.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *StepError) Unwrap() error {
	return e.Err
}
