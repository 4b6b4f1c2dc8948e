package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/solarsync/internal/client/accessor"
	"github.com/iudanet/solarsync/internal/client/outbox"
	"github.com/iudanet/solarsync/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync выполняет полную синхронизацию с сервером
	Sync(ctx context.Context) (*SyncResult, error)

	// GetPendingSyncCount возвращает количество запросов, ожидающих повтора
	GetPendingSyncCount(ctx context.Context) (int, error)
}

//go:generate moq -out replayer_mock.go . Replayer

// Replayer повторяет запросы из очереди
type Replayer interface {
	Replay(ctx context.Context, doer outbox.Doer) (*outbox.ReplayResult, error)
	Pending(ctx context.Context) (int, error)
}

// service синхронизирует локальные кеши с сервером
type service struct {
	replayer  Replayer
	doer      outbox.Doer
	accessors []accessor.Handle
	logger    *slog.Logger
}

// NewService creates a new sync service. doer must reach the network
// directly, bypassing the offline interceptor.
func NewService(replayer Replayer, doer outbox.Doer, accessors []accessor.Handle, logger *slog.Logger) Service {
	return &service{
		replayer:  replayer,
		doer:      doer,
		accessors: accessors,
		logger:    logger,
	}
}

// EntityResult итог обновления одного типа сущностей
type EntityResult struct {
	Err    error
	Entity models.EntityType
	Count  int
}

// SyncResult contains sync operation results
type SyncResult struct {
	ReplayErr error
	Entities  []EntityResult
	Replayed  int // доставлено из очереди
	Rejected  int // отклонено сервером, осталось в очереди
	Pending   int // осталось в очереди после синхронизации
}

// Failed returns the entity refreshes that did not succeed
func (r *SyncResult) Failed() []EntityResult {
	var failed []EntityResult
	for _, e := range r.Entities {
		if e.Err != nil {
			failed = append(failed, e)
		}
	}
	return failed
}

// Sync performs full synchronization with server
// 1. Replays writes queued while offline
// 2. Re-fetches every entity type and overwrites its cache
//
// There is no merge: the server copy always wins. The result is returned
// even when some steps failed; the error then joins every failure.
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	s.logger.Info("Starting synchronization")

	result := &SyncResult{}

	// Запросы из очереди идут первыми, иначе обновление кеша их не увидит
	replay, err := s.replayer.Replay(ctx, s.doer)
	if replay != nil {
		result.Replayed = replay.Sent
		result.Rejected = replay.Rejected
		result.Pending = replay.Remaining
	}
	if err != nil {
		s.logger.Warn("Replay of queued requests failed", "error", err)
		result.ReplayErr = err
	}

	result.Entities = make([]EntityResult, len(s.accessors))

	// Ошибка одной сущности не отменяет обновление остальных
	var g errgroup.Group
	for i, h := range s.accessors {
		g.Go(func() error {
			count, err := h.Refresh(ctx)
			result.Entities[i] = EntityResult{Entity: h.Entity(), Count: count, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	errs := []error{}
	if result.ReplayErr != nil {
		errs = append(errs, fmt.Errorf("replay: %w", result.ReplayErr))
	}
	for _, e := range result.Failed() {
		s.logger.Warn("Failed to refresh entity", "entity", e.Entity, "error", e.Err)
		errs = append(errs, fmt.Errorf("%s: %w", e.Entity, e.Err))
	}

	s.logger.Info("Synchronization completed",
		"replayed", result.Replayed,
		"rejected", result.Rejected,
		"pending", result.Pending,
		"failed", len(result.Failed()))

	return result, errors.Join(errs...)
}

// GetPendingSyncCount returns the number of queued requests
func (s *service) GetPendingSyncCount(ctx context.Context) (int, error) {
	count, err := s.replayer.Pending(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued requests: %w", err)
	}
	return count, nil
}
