package apischema

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The first group is generic; the second group identifies the parse
// failures that can occur while extracting a schema from a page.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"

	// ESTRUCTURE indicates the content-region marker is absent from the
	// document; the whole parse fails with no partial result.
	ESTRUCTURE = "structure_not_found"

	// EMISSINGCOLUMN indicates a declaration table row lacks one of the
	// expected columns.
	EMISSINGCOLUMN = "missing_column"

	// EAMBIGUOUS indicates a declaration heading is followed by more than
	// one shape-bearing block before the next heading.
	EAMBIGUOUS = "ambiguous_shape"
)

// Error represents an application-specific error. Errors carry a
// machine-readable code and a human-readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("apischema error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
