package api

import (
	"errors"
	"fmt"

	"github.com/iudanet/solarsync/internal/connectivity"
)

var (
	// ErrOffline returned by mutations while the monitor reports offline.
	// No request is sent.
	ErrOffline = connectivity.ErrOffline

	// ErrQueued the request did not reach the remote API; the offline
	// interceptor queued it for replay and answered on its behalf.
	ErrQueued = errors.New("request queued for replay while offline")

	// ErrFromCache the offline interceptor answered a read from its cache.
	// The decoded result is still returned alongside.
	ErrFromCache = connectivity.ErrServedFromCache
)

// StatusError non-2xx response from the remote API
type StatusError struct {
	Type       string // Airtable error type, if the body had one
	Message    string
	Body       string // raw response body
	StatusCode int
}

func (e *StatusError) Error() string {
	switch {
	case e.Type != "" && e.Message != "":
		return fmt.Sprintf("remote error (%d): %s: %s", e.StatusCode, e.Type, e.Message)
	case e.Type != "":
		return fmt.Sprintf("remote error (%d): %s", e.StatusCode, e.Type)
	default:
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
	}
}

// FieldError a field is present in a remote record but has an unexpected type
type FieldError struct {
	Got      any
	Entity   string
	RecordID string
	Field    string
	Want     string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s record %s: field %q: want %s, got %T", e.Entity, e.RecordID, e.Field, e.Want, e.Got)
}
