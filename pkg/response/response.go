// Package response carries an HTTP status alongside an error so the
// handler util can map pipeline failures straight onto replies.
package response

import (
	"errors"
)

// Error pairs a status code with the underlying error. Sentinels like
// the quote domain's ErrRateNotFound wrap into one of these at the
// handler boundary.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}
