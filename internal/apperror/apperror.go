// ABOUTME: Sentinel errors and typed error values for bplog.
// ABOUTME: Lets callers branch on outcome kind with errors.Is.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a lookup that matched no measurements. It is a
	// reported outcome, not a fatal condition.
	ErrNotFound = errors.New("not found")

	// ErrNoMatch marks a disambiguating time that matched none of the
	// same-day candidates. No mutation has occurred; the caller may retry.
	ErrNoMatch = errors.New("no matching time")

	// ErrMalformedRecord marks a structurally invalid record reaching the
	// renderer. This is a caller bug and is never silently coerced.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrNoRecords marks an operation on an empty measurement set.
	ErrNoRecords = errors.New("no records")
)

// AppError pairs a sentinel with a human-readable message.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that a date has no measurements.
func NotFound(date string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("no measurements found for %s", date),
	}
}

// NoMatchAtTime reports that none of the candidates on date carry the
// given time of day.
func NoMatchAtTime(date, tod string) *AppError {
	return &AppError{
		Err:     ErrNoMatch,
		Message: fmt.Sprintf("no measurement found for %s at time %s", date, tod),
	}
}

// MalformedRecord reports a record that fails structural validation.
func MalformedRecord(detail error) *AppError {
	return &AppError{
		Err:     ErrMalformedRecord,
		Message: fmt.Sprintf("unexpected row format: %v", detail),
	}
}
