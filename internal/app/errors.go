package app

import (
	"context"
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the user asked the clock to exit.
	ErrQuit = errors.New("quit requested")

	// ErrNoBackend indicates Run was called before SetBackend.
	ErrNoBackend = errors.New("no display backend")

	// ErrNotTerminal indicates the output is not an interactive terminal.
	ErrNotTerminal = errors.New("output is not a terminal")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op      string // Operation name (e.g., "init", "shutdown")
	Target  string // Target of the operation (e.g., "terminal")
	Context string // Additional context
	Err     error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

// WithContext adds context to the error.
// Safe to call on nil receiver - returns nil.
func (e *OperationError) WithContext(ctx string) *OperationError {
	if e == nil {
		return nil
	}
	e.Context = ctx
	return e
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	var msg string
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	} else {
		msg = e.Op
	}

	if e.Context != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Context)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RecoveredPanicError wraps a panic value raised inside the frame loop so
// it can be reported after the terminal has been restored.
type RecoveredPanicError struct {
	Value any
	Stack string
}

func (e *RecoveredPanicError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// IsNormalExit reports whether err ends the program successfully: a quit
// key press or a cancelled context.
func IsNormalExit(err error) bool {
	return err == nil ||
		errors.Is(err, ErrQuit) ||
		errors.Is(err, context.Canceled)
}
