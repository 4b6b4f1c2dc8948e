// Package cache keeps the last fetched collection of each entity type in local
// storage together with the time it was written.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/iudanet/solarsync/internal/client/storage"
	"github.com/iudanet/solarsync/internal/models"
)

// Entry is a cached payload with its write time
type Entry[T any] struct {
	Payload   []T
	WrittenAt int64 // ms since epoch
}

// Option configures a Store or StatusStore
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Store is the cache of one entity type. Construct it once per process and
// share the pointer: all reads and writes for the entity go through it.
type Store[T any] struct {
	kv     storage.KVStorage
	logger *slog.Logger
	now    func() time.Time
	entity models.EntityType
}

// NewStore creates a cache store for entity backed by kv
func NewStore[T any](kv storage.KVStorage, entity models.EntityType, logger *slog.Logger, opts ...Option) *Store[T] {
	if logger == nil {
		logger = slog.Default()
	}
	o := buildOptions(opts)
	return &Store[T]{
		kv:     kv,
		logger: logger.With("entity", entity.String()),
		now:    o.now,
		entity: entity,
	}
}

// Entity returns the entity type of the store
func (s *Store[T]) Entity() models.EntityType {
	return s.entity
}

// Read returns the cached entry or nil. It never fails: a missing, corrupt or
// unreadable value is a cache miss.
func (s *Store[T]) Read(ctx context.Context) *Entry[T] {
	payloadKey := s.entity.CacheKey()
	tsKey := s.entity.CacheTimestampKey()

	values, err := s.kv.Get(ctx, payloadKey, tsKey)
	if err != nil {
		s.logger.Warn("Failed to read cache", "error", err)
		return nil
	}

	rawPayload, ok := values[payloadKey]
	if !ok {
		return nil
	}
	rawTS, ok := values[tsKey]
	if !ok {
		s.logger.Debug("Cache payload without timestamp, treating as miss")
		return nil
	}

	writtenAt, err := strconv.ParseInt(string(rawTS), 10, 64)
	if err != nil {
		s.logger.Warn("Corrupt cache timestamp, treating as miss", "error", err)
		return nil
	}

	var payload []T
	if err := json.Unmarshal(rawPayload, &payload); err != nil {
		s.logger.Warn("Corrupt cache payload, treating as miss", "error", err)
		return nil
	}

	return &Entry[T]{Payload: payload, WrittenAt: writtenAt}
}

// Write replaces the cached payload and stamps it with the current time.
// Payload and timestamp land in one transaction.
func (s *Store[T]) Write(ctx context.Context, payload []T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s cache: %w", s.entity, err)
	}

	ts := strconv.FormatInt(s.now().UnixMilli(), 10)

	err = s.kv.Put(ctx, map[string][]byte{
		s.entity.CacheKey():          data,
		s.entity.CacheTimestampKey(): []byte(ts),
	})
	if err != nil {
		return fmt.Errorf("failed to write %s cache: %w", s.entity, err)
	}

	return nil
}

// Invalidate removes the entry outright
func (s *Store[T]) Invalidate(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.entity.CacheKey(), s.entity.CacheTimestampKey()); err != nil {
		return fmt.Errorf("failed to invalidate %s cache: %w", s.entity, err)
	}
	return nil
}

// Age returns the time since the last Write. ok is false when nothing is cached.
// Plain wall-clock subtraction, a clock moved backwards yields a negative age.
func (s *Store[T]) Age(ctx context.Context) (age time.Duration, ok bool) {
	entry := s.Read(ctx)
	if entry == nil {
		return 0, false
	}
	return entry.Age(s.now()), true
}

// Age returns the age of the entry relative to now
func (e *Entry[T]) Age(now time.Time) time.Duration {
	return time.Duration(now.UnixMilli()-e.WrittenAt) * time.Millisecond
}
