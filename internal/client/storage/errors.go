package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no API token has been saved yet
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrRequestNotFound indicates that a queued request was not found in the outbox
	ErrRequestNotFound = errors.New("queued request not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
