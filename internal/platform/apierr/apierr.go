package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// MissingParam marks a contractually required parameter that was absent.
func MissingParam(code string, err error) *Error {
	return New(http.StatusBadRequest, code, err)
}

// InvalidParam marks a present-but-unusable value on an endpoint where the
// filter cannot be silently dropped (e.g. an out-of-cap date range).
func InvalidParam(code string, err error) *Error {
	return New(http.StatusBadRequest, code, err)
}

// Store wraps a failed read against the backing store.
func Store(err error) *Error {
	return New(http.StatusInternalServerError, "store_error", err)
}

// Integrity marks an aggregation key with no matching reference entry or
// bucket. Correct data never produces this.
func Integrity(err error) *Error {
	return New(http.StatusInternalServerError, "integrity_error", err)
}

// From extracts an *Error from an error chain, defaulting to a 500.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return New(http.StatusInternalServerError, "internal_error", err)
}
