// Package errs wraps cockroachdb/errors so callers keep stack traces and can
// tag an error with a sentinel without losing its cause.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap returns nil for a nil err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark makes Is(err, mark) true while err's message and cause stay intact.
// A nil err yields mark itself.
func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

// Is also matches marks added with Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
