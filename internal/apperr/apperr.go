// Package apperr defines the application error type.
package apperr

import "fmt"

// Error is a formattable application error.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Fmt returns a copy of the error with its message placeholders filled in.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
	}
}
