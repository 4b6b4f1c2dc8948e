package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/solarsync/internal/client/storage"
	"github.com/iudanet/solarsync/internal/models"
)

// Enqueue stores a queued request under its ID.
// IDs are UUIDv7, so bbolt key order is also enqueue order.
func (s *Storage) Enqueue(ctx context.Context, req *models.QueuedRequest) error {
	if req == nil || req.ID == "" {
		return fmt.Errorf("queued request must have an ID")
	}

	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal queued request: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}

		if err := bucket.Put([]byte(req.ID), data); err != nil {
			return fmt.Errorf("failed to save queued request: %w", err)
		}
		return nil
	})
}

// List returns all queued requests in key order. Entries that cannot be
// decoded are moved to a separate bucket and skipped, so one broken entry
// does not block the rest of the queue.
func (s *Storage) List(ctx context.Context) ([]*models.QueuedRequest, error) {
	var (
		requests []*models.QueuedRequest
		corrupt  [][]byte
	)

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			req := &models.QueuedRequest{}
			if err := json.Unmarshal(v, req); err != nil {
				s.logger.Warn("Skipping corrupt queued request", "id", string(k), "error", err)
				// ключ действителен только внутри транзакции
				corrupt = append(corrupt, bytes.Clone(k))
				return nil
			}
			requests = append(requests, req)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if len(corrupt) > 0 {
		if err := s.quarantine(corrupt); err != nil {
			s.logger.Warn("Failed to move corrupt queued requests aside", "count", len(corrupt), "error", err)
		}
	}

	return requests, nil
}

// quarantine переносит нечитаемые записи из очереди в outbox_corrupt
func (s *Storage) quarantine(keys [][]byte) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}
		target, err := tx.CreateBucketIfNotExists(bucketOutboxCorrupt)
		if err != nil {
			return fmt.Errorf("failed to create %s bucket: %w", bucketOutboxCorrupt, err)
		}

		for _, k := range keys {
			v := bucket.Get(k)
			if v == nil {
				continue
			}
			if err := target.Put(k, bytes.Clone(v)); err != nil {
				return fmt.Errorf("failed to keep corrupt request %s: %w", k, err)
			}
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to remove corrupt request %s: %w", k, err)
			}
		}
		return nil
	})
}

// Update overwrites an existing queued request
func (s *Storage) Update(ctx context.Context, req *models.QueuedRequest) error {
	if req == nil {
		return fmt.Errorf("queued request is nil")
	}

	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal queued request: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}

		if bucket.Get([]byte(req.ID)) == nil {
			return storage.ErrRequestNotFound
		}

		if err := bucket.Put([]byte(req.ID), data); err != nil {
			return fmt.Errorf("failed to update queued request: %w", err)
		}
		return nil
	})
}

// Remove deletes a queued request by ID
func (s *Storage) Remove(ctx context.Context, id string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrRequestNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to remove queued request: %w", err)
		}
		return nil
	})
}

// Count returns the number of queued requests
func (s *Storage) Count(ctx context.Context) (int, error) {
	var count int

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}
		count = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
