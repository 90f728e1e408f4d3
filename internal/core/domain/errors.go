package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown calendar provider or country.
	ErrUnsupportedType = errors.New("unsupported type")

	// Calendar Errors.

	// ErrDataUnavailable indicates the calendar source could not be reached
	// or returned no usable business days for the requested year.
	ErrDataUnavailable = errors.New("calendar data unavailable")

	// ErrResolutionFailed indicates the bounded search for a business day
	// gave up. This points at inconsistent provider data rather than a
	// deliberate horizon limit, which is reported as a not-found value.
	ErrResolutionFailed = errors.New("business day resolution failed")

	// ErrRateLimited indicates the calendar provider rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
