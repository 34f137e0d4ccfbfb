package model

import "errors"

var (
	// ErrInvalidArgument is returned for unknown folder IDs and mismatched reorder sets.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidOperation is returned for operations the sidebar never allows,
	// such as removing the default folder.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrPersistence is returned when the folder list could not be written.
	ErrPersistence = errors.New("persistence failure")
)
