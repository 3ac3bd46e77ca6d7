package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for inputs that violate a
	// structural precondition (e.g. an experiment with fewer than two variants).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInsufficientData marks a computation that declined to produce a result
	// because the input cohort was too small to carry signal.
	ErrInsufficientData = errors.New("insufficient data")
)
