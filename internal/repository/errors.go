package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity or snapshot doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrPersistence is returned when the underlying storage fails to read or write
	ErrPersistence = errors.New("persistence failure")
)
