// Package accessor implements the stale-while-revalidate read policy and the
// invalidate-on-write policy on top of a cache store and a remote gateway.
package accessor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iudanet/solarsync/internal/client/cache"
	"github.com/iudanet/solarsync/internal/connectivity"
	"github.com/iudanet/solarsync/internal/models"
	"github.com/iudanet/solarsync/pkg/api"
)

// ErrNoCache nothing cached and the network could not be used
var ErrNoCache = errors.New("no cached data available")

// GetOptions options of a read
type GetOptions struct {
	// Force skips the cache and fetches synchronously even when the cache is fresh
	Force bool
}

// Result of a read. Read failures that could be degraded to cached data are
// reported in Err instead of the error return.
type Result[T any] struct {
	Err       error
	Items     []T
	FromCache bool
	IsStale   bool
	Offline   bool
}

// Option настраивает Accessor
type Option func(*options)

type options struct {
	status  *cache.StatusStore
	now     func() time.Time
	timeout time.Duration
}

// WithStatus records the outcome of every refresh into status
func WithStatus(status *cache.StatusStore) Option {
	return func(o *options) { o.status = status }
}

// WithTimeout bounds every remote fetch
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithClock replaces time.Now when computing the cache age
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Accessor coordinates the cache and the gateway of one entity type
type Accessor[T any] struct {
	store   *cache.Store[T]
	gateway Gateway[T]
	monitor *connectivity.Monitor
	status  *cache.StatusStore
	logger  *slog.Logger
	now     func() time.Time
	wg      sync.WaitGroup
	ttl     time.Duration
	timeout time.Duration
}

// New creates an accessor. The TTL is the design constant of the store's entity type.
func New[T any](store *cache.Store[T], gateway Gateway[T], monitor *connectivity.Monitor, logger *slog.Logger, opts ...Option) *Accessor[T] {
	if logger == nil {
		logger = slog.Default()
	}
	o := options{now: time.Now, timeout: connectivity.DefaultFetchTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	return &Accessor[T]{
		store:   store,
		gateway: gateway,
		monitor: monitor,
		status:  o.status,
		logger:  logger.With("entity", store.Entity().String()),
		now:     o.now,
		ttl:     store.Entity().TTL(),
		timeout: o.timeout,
	}
}

// Entity returns the entity type
func (a *Accessor[T]) Entity() models.EntityType {
	return a.store.Entity()
}

// Get returns the entity collection.
//
//   - offline: cached payload (or ErrNoCache in Result.Err), never the network;
//   - fresh cache: cached payload;
//   - stale cache: cached payload immediately, refresh in background;
//   - no cache or Force: blocking fetch, falling back to any cache on failure.
//
// The error return is non-nil only when the fetch failed and nothing was cached.
func (a *Accessor[T]) Get(ctx context.Context, opts GetOptions) (*Result[T], error) {
	entry := a.store.Read(ctx)

	if !a.monitor.IsOnline() {
		return a.offlineResult(entry), nil
	}

	if entry != nil && !opts.Force {
		if entry.Age(a.now()) <= a.ttl {
			return &Result[T]{Items: entry.Payload, FromCache: true}, nil
		}

		a.refreshInBackground(ctx)
		return &Result[T]{Items: entry.Payload, FromCache: true, IsStale: true}, nil
	}

	return a.fetch(ctx, entry)
}

// Refresh forces a synchronous fetch and reports the number of records or the failure
func (a *Accessor[T]) Refresh(ctx context.Context) (int, error) {
	res, err := a.Get(ctx, GetOptions{Force: true})
	if err != nil {
		return 0, err
	}
	if res.Offline {
		return 0, fmt.Errorf("refresh %s: %w", a.Entity(), connectivity.ErrOffline)
	}
	if res.Err != nil {
		return 0, res.Err
	}
	return len(res.Items), nil
}

func (a *Accessor[T]) offlineResult(entry *cache.Entry[T]) *Result[T] {
	if entry == nil {
		return &Result[T]{Items: []T{}, Offline: true, Err: ErrNoCache}
	}
	return &Result[T]{
		Items:     entry.Payload,
		FromCache: true,
		IsStale:   entry.Age(a.now()) > a.ttl,
		Offline:   true,
	}
}

func (a *Accessor[T]) fetch(ctx context.Context, entry *cache.Entry[T]) (*Result[T], error) {
	fallback := func() ([]T, bool) {
		if entry == nil {
			return nil, false
		}
		return entry.Payload, true
	}

	// Ответ из кеша перехватчика не пишется в Store: его возраст неизвестен
	var served atomic.Pointer[[]T]
	fetchAll := func(ctx context.Context) ([]T, error) {
		items, err := a.gateway.FetchAll(ctx)
		if errors.Is(err, connectivity.ErrServedFromCache) {
			served.Store(&items)
		}
		return items, err
	}

	items, usedFallback, err := connectivity.FetchWithOfflineFallback(ctx, a.monitor, a.timeout, fetchAll, fallback)

	switch {
	case err == nil && !usedFallback:
		if werr := a.store.Write(ctx, items); werr != nil {
			a.logger.Error("Failed to write cache", "error", werr)
		}
		a.recordSuccess(ctx, len(items))
		return &Result[T]{Items: items}, nil

	case err == nil:
		// Сеть пропала между проверкой и запросом
		return a.offlineResult(entry), nil

	case errors.Is(err, connectivity.ErrOffline):
		return a.offlineResult(nil), nil

	case usedFallback:
		a.logger.Warn("Fetch failed, serving cached data", "error", err)
		a.recordFailure(ctx, err)
		return &Result[T]{
			Items:     items,
			FromCache: true,
			IsStale:   entry.Age(a.now()) > a.ttl,
			Err:       err,
		}, nil

	case errors.Is(err, connectivity.ErrServedFromCache) && served.Load() != nil:
		a.logger.Warn("Network unavailable, serving interceptor cache", "error", err)
		a.recordFailure(ctx, err)
		return &Result[T]{
			Items:     *served.Load(),
			FromCache: true,
			IsStale:   true,
			Err:       err,
		}, nil

	default:
		a.recordFailure(ctx, err)
		return nil, fmt.Errorf("failed to fetch %s: %w", a.Entity(), err)
	}
}

// refreshInBackground fetches and overwrites the cache without blocking the
// caller. Refreshes are not cancelled or deduplicated: the last write wins.
func (a *Accessor[T]) refreshInBackground(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		fetchCtx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()

		// ErrServedFromCache тоже ошибка: устаревший кеш не перезаписывается
		items, err := a.gateway.FetchAll(fetchCtx)
		if err != nil {
			a.logger.Warn("Background refresh failed, keeping stale cache", "error", err)
			a.recordFailure(ctx, err)
			return
		}

		if err := a.store.Write(ctx, items); err != nil {
			a.logger.Error("Failed to write refreshed cache", "error", err)
			a.recordFailure(ctx, err)
			return
		}

		a.logger.Debug("Background refresh done", "count", len(items))
		a.recordSuccess(ctx, len(items))
	}()
}

// Wait blocks until all background refreshes started so far have settled
func (a *Accessor[T]) Wait() {
	a.wg.Wait()
}

// Create creates a record and invalidates the cache on success.
// When the invalidation itself fails, the created record is returned along
// with the error.
func (a *Accessor[T]) Create(ctx context.Context, fields api.Fields) (T, error) {
	item, err := a.gateway.Create(ctx, fields)
	if err != nil {
		var zero T
		return zero, err
	}
	return item, a.Invalidate(ctx)
}

// Update patches a record and invalidates the cache on success
func (a *Accessor[T]) Update(ctx context.Context, id string, fields api.Fields) (T, error) {
	item, err := a.gateway.Update(ctx, id, fields)
	if err != nil {
		var zero T
		return zero, err
	}
	return item, a.Invalidate(ctx)
}

// Delete removes a record and invalidates the cache on success
func (a *Accessor[T]) Delete(ctx context.Context, id string) error {
	if err := a.gateway.Delete(ctx, id); err != nil {
		return err
	}
	return a.Invalidate(ctx)
}

// Invalidate drops the cached collection so the next read goes to the network
func (a *Accessor[T]) Invalidate(ctx context.Context) error {
	return a.store.Invalidate(ctx)
}

// Status returns the last recorded refresh outcome, nil when not tracked
func (a *Accessor[T]) Status(ctx context.Context) *models.SyncStatus {
	if a.status == nil {
		return nil
	}
	return a.status.Last(ctx)
}

func (a *Accessor[T]) recordSuccess(ctx context.Context, count int) {
	if a.status == nil {
		return
	}
	if err := a.status.RecordSuccess(ctx, count); err != nil {
		a.logger.Warn("Failed to record sync status", "error", err)
	}
}

func (a *Accessor[T]) recordFailure(ctx context.Context, cause error) {
	if a.status == nil {
		return
	}
	if err := a.status.RecordFailure(ctx, cause); err != nil {
		a.logger.Warn("Failed to record sync status", "error", err)
	}
}
