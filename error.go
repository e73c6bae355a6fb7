package kbase

import (
	"errors"
	"fmt"
)

// Application error codes. These map to the failure conditions of the
// service: they are translated to HTTP status codes at the edge and
// inspected by callers via ErrorCode.
const (
	ECONFLICT        = "conflict"        // duplicate identifier
	EEMPTY           = "empty"           // no sections found in non-empty input
	EFORBIDDEN       = "forbidden"       // identity lacks required role
	EINTERNAL        = "internal"        // internal error (message not shown to clients)
	EINVALID         = "invalid"         // validation failed
	ENOTFOUND        = "not_found"       // entity does not exist
	EUNAUTHENTICATED = "unauthenticated" // missing or invalid credentials
	EUNAVAILABLE     = "unavailable"     // storage layer unreachable
	EUNPROCESSABLE   = "unprocessable"   // converter could not produce text
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("kbase error: code=%s message=%s", e.Code, e.Message)
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
// Non-application errors always return "Internal error.".
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
