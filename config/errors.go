package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for config operations.
var (
	// ErrUnsupportedFormat indicates a file extension or format name with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidConfig indicates a config that failed validation.
	ErrInvalidConfig = errors.New("invalid config")
)

// Error wraps config errors with the operation and file involved.
type Error struct {
	Op   string // Operation that failed ("load", "parse", "watch")
	Path string // File path, if any
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}
