package scoring

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	CodeInvalidState      Code = "INVALID_STATE"
	CodeUnassignedPlayers Code = "UNASSIGNED_PLAYERS"
	CodeNotFound          Code = "NOT_FOUND"
	CodeInvalidInput      Code = "INVALID_INPUT"
)

// Error is the domain error returned by scoring operations.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidState      = &Error{Code: CodeInvalidState, Message: "invalid state"}
	ErrUnassignedPlayers = &Error{Code: CodeUnassignedPlayers, Message: "players not assigned"}
	ErrNotFound          = &Error{Code: CodeNotFound, Message: "not found"}
	ErrInvalidInput      = &Error{Code: CodeInvalidInput, Message: "invalid input"}
)

// NotFound builds a NOT_FOUND error for a missing record.
func NotFound(kind, id string) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("%s %s not found", kind, id)}
}

// CodeOf extracts the code of a domain error; ok is false for foreign errors.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

func invalidState(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidState, Message: fmt.Sprintf(format, args...)}
}

func invalidInput(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func unassigned(format string, args ...any) *Error {
	return &Error{Code: CodeUnassignedPlayers, Message: fmt.Sprintf(format, args...)}
}
