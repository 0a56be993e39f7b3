package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error carries the logic location it was raised from, an i18n message
// key for the response layer and an http status code (500 unless
// overridden with Code).
type Error struct {
	location string
	key      string
	code     int
	raw      error
}

func New(location, messageKey string, raw error) *Error {
	return &Error{
		location: location,
		key:      messageKey,
		code:     http.StatusInternalServerError,
		raw:      raw,
	}
}

func (e *Error) Code(code int) *Error {
	e.code = code
	return e
}

func (e *Error) StatusCode() int {
	return e.code
}

func (e *Error) MessageKey() string {
	return e.key
}

func (e *Error) Location() string {
	return e.location
}

func (e *Error) Error() string {
	if e.raw == nil {
		return e.location
	}
	return fmt.Sprintf("%s: %s", e.location, e.raw.Error())
}

func (e *Error) Unwrap() error {
	return e.raw
}

// Trace prepends location to an already raised *Error, any other error
// is wrapped as an internal one.
func Trace(location string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		e.location = strings.Join([]string{location, e.location}, ".")
		return e
	}
	return New(location, "", err)
}

func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}
