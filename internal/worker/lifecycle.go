package worker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/iudanet/solarsync/internal/worker/respcache"
)

// Install precaches the shell files. Either every file is cached or none
// is. With SkipWaiting the worker activates right after.
//
// When precaching fails but the shell cache of the current version is still
// on disk from an earlier run, that install is reused and the worker
// activates without the network.
func (w *Worker) Install(ctx context.Context) error {
	err := w.call(ctx, func() error {
		if w.State() != StateNew {
			return fmt.Errorf("%w: install from %s", ErrInvalidState, w.State())
		}
		w.state.Store(int32(StateInstalling))
		return nil
	})
	if err != nil {
		return err
	}

	if err := w.precache(ctx); err != nil {
		// Кеш этой версии остался от прошлого запуска: установка уже была
		if ctx.Err() == nil && w.hasShellCache(ctx) {
			w.logger.Warn("worker install failed, reusing cached shell",
				"cache", w.cfg.ShellCache(),
				"error", err)
			return w.restore(ctx)
		}

		w.logger.Error("worker install failed", "error", err)
		_ = w.call(context.WithoutCancel(ctx), func() error {
			w.state.Store(int32(StateNew))
			return nil
		})
		return fmt.Errorf("install failed: %w", err)
	}

	return w.call(ctx, func() error {
		w.state.Store(int32(StateInstalled))
		w.logger.Info("worker installed",
			"cache", w.cfg.ShellCache(),
			"files", len(w.cfg.ShellFiles))

		if w.cfg.SkipWaiting {
			return w.activate(ctx)
		}
		return nil
	})
}

// hasShellCache reports whether a previous run left a complete shell cache of
// the current version. Precaching is all-or-nothing, so the cache existing
// means an install finished.
func (w *Worker) hasShellCache(ctx context.Context) bool {
	names, err := w.caches.Names(ctx)
	if err != nil {
		w.logger.Warn("failed to list caches", "error", err)
		return false
	}
	return slices.Contains(names, w.cfg.ShellCache())
}

// restore activates a worker installed by a previous run. The pages of that
// run are gone, so nothing is left to wait for and SkipWaiting does not apply.
func (w *Worker) restore(ctx context.Context) error {
	return w.call(ctx, func() error {
		w.state.Store(int32(StateInstalled))
		return w.activate(ctx)
	})
}

// precache выполняется вне актора: сеть может быть медленной
func (w *Worker) precache(ctx context.Context) error {
	fetched := make(map[string]*respcache.Response, len(w.cfg.ShellFiles))

	for _, file := range w.cfg.ShellFiles {
		target, err := w.origin.Parse(file)
		if err != nil {
			return fmt.Errorf("invalid shell file %q: %w", file, err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
		if err != nil {
			return err
		}

		resp, err := w.network.RoundTrip(req)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", target, err)
		}

		stored, err := respcache.Capture(resp)
		if err != nil {
			return fmt.Errorf("read %s: %w", target, err)
		}
		if stored.StatusCode < 200 || stored.StatusCode > 299 {
			return fmt.Errorf("fetch %s: unexpected status %d", target, stored.StatusCode)
		}

		fetched[respcache.Key(req)] = stored
	}

	cacheName := w.cfg.ShellCache()
	for key, stored := range fetched {
		if err := w.caches.Put(ctx, cacheName, key, stored); err != nil {
			_ = w.caches.Delete(context.WithoutCancel(ctx), cacheName)
			return fmt.Errorf("store %s: %w", key, err)
		}
	}

	return nil
}

// Activate removes caches of other versions and takes control of every
// connected page
func (w *Worker) Activate(ctx context.Context) error {
	return w.call(ctx, func() error {
		switch w.State() {
		case StateActivated:
			return nil
		case StateInstalled:
			return w.activate(ctx)
		default:
			return fmt.Errorf("%w: activate from %s", ErrInvalidState, w.State())
		}
	})
}

// activate вызывается только из актора
func (w *Worker) activate(ctx context.Context) error {
	w.state.Store(int32(StateActivating))

	current := []string{w.cfg.ShellCache(), w.cfg.APICache()}

	names, err := w.caches.Names(ctx)
	if err != nil {
		w.logger.Warn("failed to list caches on activate", "error", err)
	}
	for _, name := range names {
		if slices.Contains(current, name) {
			continue
		}
		if err := w.caches.Delete(ctx, name); err != nil {
			w.logger.Warn("failed to delete old cache", "cache", name, "error", err)
			continue
		}
		w.logger.Info("old cache deleted", "cache", name)
	}

	// claim
	for _, p := range w.ports {
		p.controlled = true
	}

	w.state.Store(int32(StateActivated))
	w.logger.Info("worker activated", "version", w.cfg.Version, "ports", len(w.ports))

	return nil
}

// Sync handles a background sync event. Only SyncTag is recognised: every
// controlled page is told to replay its queued writes.
func (w *Worker) Sync(ctx context.Context, tag string) (int, error) {
	if tag != SyncTag {
		return 0, fmt.Errorf("unknown sync tag %q", tag)
	}
	return w.Broadcast(ctx, Message{Type: MessageStartSync})
}

// ClearCaches deletes every cache the worker owns
func (w *Worker) ClearCaches(ctx context.Context) error {
	return w.call(ctx, func() error {
		return w.clearCaches(ctx)
	})
}

func (w *Worker) clearCaches(ctx context.Context) error {
	names, err := w.caches.Names(ctx)
	if err != nil {
		return fmt.Errorf("failed to list caches: %w", err)
	}

	var errs []error
	for _, name := range names {
		if err := w.caches.Delete(ctx, name); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", name, err))
		}
	}
	w.logger.Info("caches cleared", "count", len(names))

	return errors.Join(errs...)
}
