// Package outbox persists writes that the offline interceptor could not
// deliver and replays them once the network is back.
package outbox

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/iudanet/solarsync/internal/client/storage"
	"github.com/iudanet/solarsync/internal/models"
	"github.com/iudanet/solarsync/internal/worker"
	"github.com/iudanet/solarsync/pkg/api"
)

//go:generate moq -out doer_mock.go . Doer

// Doer sends a replayed request over the real network, never back through
// the interceptor
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Inbox is the page end of a worker port
type Inbox interface {
	Messages() <-chan worker.Message
}

// Invalidator drops an entity cache
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// заголовки, которые не сохраняются и не повторяются
var droppedHeaders = []string{"Authorization", "Content-Length", "Host", "Connection"}

// Service принимает запросы от воркера и повторяет их
type Service struct {
	storage storage.OutboxStorage
	routes  map[string]Invalidator
	logger  *slog.Logger
}

// ReplayResult итог одного прохода по очереди
type ReplayResult struct {
	Sent      int // доставлено и удалено из очереди
	Rejected  int // сервер ответил ошибкой, запрос остался в очереди
	Remaining int
}

// NewService creates the outbox service
func NewService(outbox storage.OutboxStorage, logger *slog.Logger) *Service {
	return &Service{
		storage: outbox,
		routes:  make(map[string]Invalidator),
		logger:  logger,
	}
}

// Route registers the cache that owns requests under tablePath.
// Must be called before Listen or Replay.
func (s *Service) Route(tablePath string, target Invalidator) {
	s.routes[tablePath] = target
}

// Enqueue stores a request handed over by the worker under a new
// time-ordered ID. Credentials are not persisted.
func (s *Service) Enqueue(ctx context.Context, req *models.QueuedRequest) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate request id: %w", err)
	}

	queued := *req
	queued.ID = id.String()
	queued.Attempts = 0
	queued.LastError = ""
	queued.Headers = make(map[string]string, len(req.Headers))
	for name, value := range req.Headers {
		if isDropped(name) {
			continue
		}
		queued.Headers[name] = value
	}

	if err := s.storage.Enqueue(ctx, &queued); err != nil {
		return "", fmt.Errorf("failed to enqueue request: %w", err)
	}

	s.logger.Info("Request queued for replay",
		"id", queued.ID,
		"method", queued.Method,
		"url", queued.URL)

	return queued.ID, nil
}

// Listen consumes worker messages until ctx is done or the port closes.
// QUEUE_REQUEST is persisted; START_SYNC calls onSync.
func (s *Service) Listen(ctx context.Context, inbox Inbox, onSync func(context.Context) error) error {
	messages := inbox.Messages()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			s.handle(ctx, msg, onSync)
		}
	}
}

func (s *Service) handle(ctx context.Context, msg worker.Message, onSync func(context.Context) error) {
	switch msg.Type {
	case worker.MessageQueueRequest:
		if msg.Data == nil {
			s.logger.Warn("QUEUE_REQUEST without data")
			return
		}
		if _, err := s.Enqueue(ctx, msg.Data); err != nil {
			s.logger.Error("Failed to persist queued request",
				"method", msg.Data.Method,
				"url", msg.Data.URL,
				"error", err)
		}
	case worker.MessageStartSync:
		if onSync == nil {
			return
		}
		if err := onSync(ctx); err != nil {
			s.logger.Warn("Sync requested by worker failed", "error", err)
		}
	default:
		s.logger.Debug("Ignoring worker message", "type", msg.Type)
	}
}

// Pending returns the number of queued requests
func (s *Service) Pending(ctx context.Context) (int, error) {
	return s.storage.Count(ctx)
}

// List returns queued requests, oldest first
func (s *Service) List(ctx context.Context) ([]*models.QueuedRequest, error) {
	return s.storage.List(ctx)
}

// Replay sends queued requests oldest first. A delivered request is
// removed and the cache of its entity is invalidated. A request the server
// rejects stays queued with its attempt counter bumped. A transport error
// stops the pass: the network is gone again.
func (s *Service) Replay(ctx context.Context, doer Doer) (*ReplayResult, error) {
	queued, err := s.storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued requests: %w", err)
	}

	result := &ReplayResult{Remaining: len(queued)}
	if len(queued) == 0 {
		return result, nil
	}

	s.logger.Info("Replaying queued requests", "count", len(queued))

	for _, q := range queued {
		status, err := s.send(ctx, doer, q)
		if err != nil {
			return result, fmt.Errorf("replay of %s stopped: %w", q.ID, err)
		}

		if status >= 200 && status < 300 {
			if err := s.storage.Remove(ctx, q.ID); err != nil {
				return result, fmt.Errorf("failed to remove replayed request %s: %w", q.ID, err)
			}
			result.Sent++
			result.Remaining--
			s.invalidate(ctx, q.URL)
			continue
		}

		q.Attempts++
		q.LastError = fmt.Sprintf("server responded %d %s", status, http.StatusText(status))
		if err := s.storage.Update(ctx, q); err != nil {
			return result, fmt.Errorf("failed to update queued request %s: %w", q.ID, err)
		}
		result.Rejected++
		s.logger.Warn("Queued request rejected",
			"id", q.ID,
			"method", q.Method,
			"url", q.URL,
			"status", status,
			"attempts", q.Attempts)
	}

	s.logger.Info("Replay completed",
		"sent", result.Sent,
		"rejected", result.Rejected,
		"remaining", result.Remaining)

	return result, nil
}

func (s *Service) send(ctx context.Context, doer Doer, q *models.QueuedRequest) (int, error) {
	var body io.Reader
	if q.Body != "" {
		body = strings.NewReader(q.Body)
	}

	req, err := http.NewRequestWithContext(ctx, q.Method, q.URL, body)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	for name, value := range q.Headers {
		if isDropped(name) {
			continue
		}
		req.Header.Set(name, value)
	}

	resp, err := doer.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	// повтор не должен снова попасть в очередь
	if resp.Header.Get(api.QueuedHeader) != "" {
		return 0, fmt.Errorf("replayed request was intercepted and queued again")
	}

	return resp.StatusCode, nil
}

// invalidate сбрасывает кеш сущности, которой принадлежит URL
func (s *Service) invalidate(ctx context.Context, rawURL string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return
	}
	path := u.EscapedPath()

	for prefix, target := range s.routes {
		if path != prefix && !strings.HasPrefix(path, prefix+"/") {
			continue
		}
		if err := target.Invalidate(ctx); err != nil {
			s.logger.Warn("Failed to invalidate cache after replay", "path", prefix, "error", err)
		}
		return
	}

	s.logger.Debug("No cache owns replayed request", "path", path)
}

func isDropped(name string) bool {
	for _, h := range droppedHeaders {
		if strings.EqualFold(h, name) {
			return true
		}
	}
	return false
}
