package storage

import (
	"context"

	"github.com/iudanet/solarsync/internal/models"
)

//go:generate moq -out outbox_mock.go . OutboxStorage

// OutboxStorage persists write requests that the offline interceptor queued
// while the network was unreachable.
type OutboxStorage interface {
	// Enqueue stores a new request. The ID must be set by the caller.
	Enqueue(ctx context.Context, req *models.QueuedRequest) error

	// List returns all queued requests, oldest first
	List(ctx context.Context) ([]*models.QueuedRequest, error)

	// Update overwrites an existing request (attempt counters)
	// Returns ErrRequestNotFound if the request does not exist
	Update(ctx context.Context, req *models.QueuedRequest) error

	// Remove deletes a request after successful replay
	// Returns ErrRequestNotFound if the request does not exist
	Remove(ctx context.Context, id string) error

	// Count returns the number of queued requests
	Count(ctx context.Context) (int, error)
}
