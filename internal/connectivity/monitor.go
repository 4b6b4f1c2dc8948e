// Package connectivity wraps the platform's online/offline signal into a
// subscribable state with a synchronous query.
package connectivity

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrOffline indicates that an operation needs the network while it is known to be down
var ErrOffline = errors.New("cannot perform this operation while offline")

// ErrServedFromCache the network failed and an older cached copy answered instead
var ErrServedFromCache = errors.New("network unavailable, response served from offline cache")

// Monitor holds the current reachability state of the local network interface.
// A true state does not guarantee that the remote host is reachable.
type Monitor struct {
	subscribers map[uint64]func(bool)
	logger      *slog.Logger
	nextID      uint64
	mu          sync.Mutex // защищает online, subscribers, nextID
	dispatchMu  sync.Mutex // сериализует доставку уведомлений
	online      bool
}

// NewMonitor creates a monitor with the given initial state
func NewMonitor(online bool, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		subscribers: make(map[uint64]func(bool)),
		logger:      logger,
		online:      online,
	}
}

// IsOnline returns the last known state
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe registers fn to be called with the new state on every transition.
// Transitions that happen while nobody is subscribed are not replayed.
// Callbacks run one at a time in transition order; a callback must not call Set.
func (m *Monitor) Subscribe(fn func(online bool)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subscribers, id)
			m.mu.Unlock()
		})
	}
}

// Set feeds a new platform signal. Subscribers are notified only when the state changes.
func (m *Monitor) Set(online bool) {
	m.dispatchMu.Lock()
	defer m.dispatchMu.Unlock()

	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online

	// Копируем подписчиков, чтобы не держать mu во время вызова колбэков
	callbacks := make([]func(bool), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		callbacks = append(callbacks, fn)
	}
	m.mu.Unlock()

	if online {
		m.logger.Info("Network is back online")
	} else {
		m.logger.Warn("Network went offline")
	}

	for _, fn := range callbacks {
		fn(online)
	}
}
