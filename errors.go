package classwatch

import (
	"errors"
	"fmt"
)

// Application error codes. These map failures to the stage of the pipeline
// that produced them so callers and tests can branch on cause rather than
// on message text.
const (
	ECONFIG       = "config"        // rules file missing, unparseable, or incomplete
	EFORMAT       = "format"        // a time string does not match the expected pattern
	EINTERNAL     = "internal"      // unexpected internal error
	EINVALID      = "invalid"       // validation failed
	EMISSINGFIELD = "missing_field" // a named cell is absent from a located row
	ESTRUCTURE    = "structure"     // an expected structural marker is absent from the document
	EUNAVAILABLE  = "unavailable"   // the openings page could not be fetched
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code classifies the error for programmatic handling.
	Code string

	// Message is a human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("classwatch error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the given error, if it is an *Error.
// Otherwise it returns EINTERNAL for any non-nil error and an empty string
// for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the given error, if it is an *Error.
// Otherwise it returns a generic message for any non-nil error and an empty
// string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf constructs an *Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
