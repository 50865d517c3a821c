package types

import "errors"

// Store operation errors.
var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation is returned when an insert or delete would
	// break referential integrity, or when a required field is missing.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStoreClosed is returned by operations on a closed store.
	ErrStoreClosed = errors.New("store is closed")

	// ErrInvalidName is returned when a section or environment name is empty.
	ErrInvalidName = errors.New("invalid name")

	// ErrUnknownValueType is returned when a value type name is not recognized.
	ErrUnknownValueType = errors.New("unknown value type")
)
