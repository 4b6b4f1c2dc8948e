// Package worker is the offline request interceptor. It sits between the
// client and the network as an http.RoundTripper, keeps response caches
// and tells connected pages about writes it could not deliver.
//
// The worker is an actor: its lifecycle state and the set of connected
// ports are owned by the Run goroutine and changed only through its inbox.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/iudanet/solarsync/internal/worker/respcache"
)

var (
	// ErrStopped the worker's Run loop has exited
	ErrStopped = errors.New("worker stopped")
	// ErrInvalidState the lifecycle transition is not allowed now
	ErrInvalidState = errors.New("invalid worker state")
	// ErrUnsupportedMessage the page sent a message the worker does not accept
	ErrUnsupportedMessage = errors.New("unsupported message type")
)

// State стадия жизненного цикла воркера
type State int32

const (
	StateNew State = iota
	StateInstalling
	StateInstalled
	StateActivating
	StateActivated
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateInstalling:
		return "installing"
	case StateInstalled:
		return "installed"
	case StateActivating:
		return "activating"
	case StateActivated:
		return "activated"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Config describes what the worker intercepts and caches
type Config struct {
	// APIHost is host[:port] of the remote API
	APIHost string
	// Origin the shell files and the root document are served from
	Origin      string
	CachePrefix string
	Version     string
	// ShellFiles are precached on install, relative to Origin
	ShellFiles  []string
	SkipWaiting bool
}

// ShellCache имя кеша статических файлов текущей версии
func (c Config) ShellCache() string {
	return c.CachePrefix + "-" + c.Version
}

// APICache имя кеша ответов API текущей версии
func (c Config) APICache() string {
	return c.CachePrefix + "-api-" + c.Version
}

type request struct {
	fn    func() error
	reply chan error
}

// Worker intercepts requests and owns the response caches
type Worker struct {
	caches  respcache.Storage
	network http.RoundTripper
	logger  *slog.Logger
	origin  *url.URL
	apiHost *url.URL
	inbox   chan request
	done    chan struct{}

	// принадлежат актору
	ports  map[uint64]*Port
	nextID uint64

	cfg   Config
	state atomic.Int32
}

// New creates a worker. network is the real transport; nil means
// http.DefaultTransport.
func New(cfg Config, caches respcache.Storage, network http.RoundTripper, logger *slog.Logger) (*Worker, error) {
	if cfg.CachePrefix == "" {
		cfg.CachePrefix = "solarsync"
	}
	if cfg.Version == "" {
		cfg.Version = "v1"
	}
	if network == nil {
		network = http.DefaultTransport
	}

	origin, err := url.Parse(strings.TrimSuffix(cfg.Origin, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid origin %q: %w", cfg.Origin, err)
	}

	return &Worker{
		caches:  caches,
		network: network,
		logger:  logger,
		origin:  origin,
		apiHost: &url.URL{Host: cfg.APIHost},
		inbox:   make(chan request),
		done:    make(chan struct{}),
		ports:   make(map[uint64]*Port),
		cfg:     cfg,
	}, nil
}

// isAPI reports whether u points at the API host. Host names are compared
// case-insensitively and a missing port means the scheme's default one.
func (w *Worker) isAPI(u *url.URL) bool {
	if !strings.EqualFold(u.Hostname(), w.apiHost.Hostname()) {
		return false
	}
	return effectivePort(u.Scheme, u.Port()) == effectivePort(u.Scheme, w.apiHost.Port())
}

func effectivePort(scheme, port string) string {
	if port != "" {
		return port
	}
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	}
	return ""
}

// Config returns the effective configuration
func (w *Worker) Config() Config {
	return w.cfg
}

// State returns the current lifecycle state
func (w *Worker) State() State {
	return State(w.state.Load())
}

// Run processes the inbox until ctx is done. It must be called exactly once.
func (w *Worker) Run(ctx context.Context) {
	defer w.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case req := <-w.inbox:
			req.reply <- req.fn()
		}
	}
}

func (w *Worker) shutdown() {
	close(w.done)
	for id, p := range w.ports {
		close(p.messages)
		delete(w.ports, id)
	}
	w.logger.Debug("worker stopped")
}

// call runs fn on the actor goroutine and waits for its result
func (w *Worker) call(ctx context.Context, fn func() error) error {
	reply := make(chan error, 1)

	select {
	case w.inbox <- request{fn: fn, reply: reply}:
	case <-w.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	// fn уже принят актором, ответ придет обязательно
	return <-reply
}

// Connect registers a new page instance. Pages connected to an active
// worker are controlled right away; others wait for activation.
func (w *Worker) Connect(ctx context.Context) (*Port, error) {
	var port *Port

	err := w.call(ctx, func() error {
		w.nextID++
		port = &Port{
			worker:     w,
			messages:   make(chan Message, portBuffer),
			id:         w.nextID,
			controlled: w.State() == StateActivated,
		}
		w.ports[port.id] = port
		return nil
	})
	if err != nil {
		return nil, err
	}

	return port, nil
}

func (w *Worker) removePort(p *Port) {
	if _, ok := w.ports[p.id]; !ok {
		return
	}
	delete(w.ports, p.id)
	close(p.messages)
}

// broadcast отправляет сообщение всем контролируемым страницам без блокировки.
// Возвращает число страниц, получивших сообщение.
func (w *Worker) broadcast(msg Message) int {
	delivered := 0
	for _, p := range w.ports {
		if !p.controlled {
			continue
		}
		select {
		case p.messages <- msg:
			delivered++
		default:
			w.logger.Warn("port buffer full, message dropped",
				"port", p.id,
				"type", msg.Type)
		}
	}
	return delivered
}

// Broadcast sends msg to every controlled page and reports how many got it
func (w *Worker) Broadcast(ctx context.Context, msg Message) (int, error) {
	var delivered int
	err := w.call(ctx, func() error {
		delivered = w.broadcast(msg)
		return nil
	})
	return delivered, err
}

func (w *Worker) handleMessage(ctx context.Context, msg Message) error {
	switch msg.Type {
	case MessageSkipWaiting:
		if w.State() != StateInstalled {
			w.logger.Debug("skip waiting ignored", "state", w.State())
			return nil
		}
		return w.activate(ctx)
	case MessageClearCache:
		return w.clearCaches(ctx)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMessage, msg.Type)
	}
}
