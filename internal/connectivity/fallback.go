package connectivity

import (
	"context"
	"fmt"
	"time"
)

// DefaultFetchTimeout timeout for FetchWithOfflineFallback when none is given
const DefaultFetchTimeout = 10 * time.Second

type fetchResult[T any] struct {
	value T
	err   error
}

// FetchWithOfflineFallback runs fetch unless the monitor reports offline,
// racing it against timeout. When the monitor is offline, fetch fails or the
// timer fires first, fallback is consulted. The boolean result reports whether
// the returned value came from fallback; err carries the fetch failure even when
// a fallback value is returned.
func FetchWithOfflineFallback[T any](
	ctx context.Context,
	monitor *Monitor,
	timeout time.Duration,
	fetch func(ctx context.Context) (T, error),
	fallback func() (T, bool),
) (T, bool, error) {
	var zero T

	if monitor != nil && !monitor.IsOnline() {
		if v, ok := fallback(); ok {
			return v, true, nil
		}
		return zero, false, ErrOffline
	}

	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Буферизованный канал: горутина не зависнет, если таймер сработал раньше
	resultC := make(chan fetchResult[T], 1)
	go func() {
		v, err := fetch(fetchCtx)
		resultC <- fetchResult[T]{value: v, err: err}
	}()

	var fetchErr error
	select {
	case res := <-resultC:
		if res.err == nil {
			return res.value, false, nil
		}
		fetchErr = res.err
	case <-fetchCtx.Done():
		fetchErr = fmt.Errorf("request timed out after %s: %w", timeout, fetchCtx.Err())
	}

	if v, ok := fallback(); ok {
		return v, true, fetchErr
	}
	return zero, false, fetchErr
}
