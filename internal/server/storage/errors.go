package storage

import "errors"

// Common storage errors
var (
	// ErrRecordNotFound indicates that record was not found in the table
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordAlreadyExists indicates an ID collision on create
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrInvalidOffset indicates a malformed pagination cursor
	ErrInvalidOffset = errors.New("invalid offset")
)
