package errors

import (
	"errors"
	"fmt"
)

type Error struct {
	Message string
	Cause   error
	Type    Type
}

func (this *Error) Error() string {
	return this.Message
}

func (this *Error) Unwrap() error {
	return this.Cause
}

// Newf creates an *Error of the given Type with an fmt style message. If the
// message wraps another *Error (via %w) the wrapped error's Type wins.
func Newf(t Type, msg string, args ...any) *Error {
	buf := fmt.Errorf(msg, args...)
	err := errors.Unwrap(buf)
	var ee *Error
	if errors.As(err, &ee) {
		t = ee.Type
	}
	return &Error{
		Message: buf.Error(),
		Cause:   err,
		Type:    t,
	}
}

// IsType checks if err or anything within its cause chain is of type t
// (or one of otherT).
func IsType(err error, t Type, otherT ...Type) bool {
	var ee *Error
	if errors.As(err, &ee) {
		if ee.Type == t {
			return true
		}
		for _, ot := range otherT {
			if ee.Type == ot {
				return true
			}
		}
		return IsType(ee.Cause, t, otherT...)
	}
	return false
}

func IsError(err error) (eErr *Error, ok bool) {
	ok = As(err, &eErr)
	return
}

// Is just a facade for errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As just a facade for errors.As
func As(err error, target any) bool {
	//goland:noinspection GoErrorsAs
	return errors.As(err, target)
}

// Unwrap just a facade for errors.Unwrap
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
