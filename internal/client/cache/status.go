package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/solarsync/internal/client/storage"
	"github.com/iudanet/solarsync/internal/models"
)

// StatusStore keeps the last refresh outcome of one entity type
type StatusStore struct {
	kv     storage.KVStorage
	logger *slog.Logger
	now    func() time.Time
	entity models.EntityType
}

// NewStatusStore creates a status store for entity
func NewStatusStore(kv storage.KVStorage, entity models.EntityType, logger *slog.Logger, opts ...Option) *StatusStore {
	if logger == nil {
		logger = slog.Default()
	}
	o := buildOptions(opts)
	return &StatusStore{
		kv:     kv,
		logger: logger.With("entity", entity.String()),
		now:    o.now,
		entity: entity,
	}
}

// RecordSuccess stores a successful refresh of count records
func (s *StatusStore) RecordSuccess(ctx context.Context, count int) error {
	return s.Record(ctx, models.SyncStatus{
		Success:   true,
		Timestamp: s.now().UnixMilli(),
		Count:     count,
	})
}

// RecordFailure stores a failed refresh
func (s *StatusStore) RecordFailure(ctx context.Context, cause error) error {
	return s.Record(ctx, models.SyncStatus{
		Success:   false,
		Timestamp: s.now().UnixMilli(),
		Error:     cause.Error(),
	})
}

// Record overwrites the last status
func (s *StatusStore) Record(ctx context.Context, status models.SyncStatus) error {
	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal sync status: %w", err)
	}

	if err := s.kv.Put(ctx, map[string][]byte{s.entity.SyncStatusKey(): data}); err != nil {
		return fmt.Errorf("failed to save %s sync status: %w", s.entity, err)
	}
	return nil
}

// Last returns the last recorded status, nil when absent or unreadable
func (s *StatusStore) Last(ctx context.Context) *models.SyncStatus {
	key := s.entity.SyncStatusKey()

	values, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Failed to read sync status", "error", err)
		return nil
	}

	raw, ok := values[key]
	if !ok {
		return nil
	}

	status := &models.SyncStatus{}
	if err := json.Unmarshal(raw, status); err != nil {
		s.logger.Warn("Corrupt sync status", "error", err)
		return nil
	}

	return status
}
