package service

import "errors"

var (
	// ErrInvalidDataProvided wraps the validator's error for a rejected payload.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNotFound is wrapped as `<resource> with id "<id>" does not exist`.
	ErrNotFound = errors.New("does not exist")

	// ErrInternal wraps unexpected storage faults.
	ErrInternal = errors.New("internal error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
