package cli

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by [Command.Lookup] when a group has no child with the requested name.
var ErrNotFound = errors.New("command not found")

// NewError creates a new error with the given error kind and error.
func NewError(kind ErrorKind, err error) error {
	return &Error{kind: kind, err: err}
}

// ErrorKind classifies failures detected by the framework itself.
type ErrorKind int

const (
	// ErrUnknownCommand is reported when a token does not match any sibling at the current depth.
	ErrUnknownCommand ErrorKind = iota + 1
	// ErrDuplicateCommand is a registration defect: two siblings share a name.
	ErrDuplicateCommand
	// ErrInvalidSignature is a registration defect: a malformed name or parameter list.
	ErrInvalidSignature
	// ErrUsage is reported when a strict command receives flags it does not declare.
	ErrUsage
	// ErrOperation wraps an unexpected error returned by a command body.
	ErrOperation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownCommand:
		return "unknown command"
	case ErrDuplicateCommand:
		return "duplicate command"
	case ErrInvalidSignature:
		return "invalid signature"
	case ErrUsage:
		return "usage error"
	case ErrOperation:
		return "operation failed"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error kind and an underlying error.
type Error struct {
	kind ErrorKind
	err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return e.kind.String() + ": <nil>"
	}
	return e.err.Error()
}

// Kind reports the error kind.
func (e *Error) Kind() ErrorKind { return e.kind }

func (e *Error) Unwrap() error { return e.err }

// IsKind reports whether any error in err's chain is an [*Error] of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var cliErr *Error
	return errors.As(err, &cliErr) && cliErr.kind == kind
}

// ExitError requests early termination with the given exit code. The command body is expected to
// have written its own output already, so the dispatcher prints nothing extra.
type ExitError struct {
	Code int
}

// Exit returns an [*ExitError] for code. Commands return it from Exec or Before.
func Exit(code int) error {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}
