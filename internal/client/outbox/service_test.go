package outbox

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/solarsync/internal/client/storage"
	"github.com/iudanet/solarsync/internal/client/storage/boltdb"
	"github.com/iudanet/solarsync/internal/models"
	"github.com/iudanet/solarsync/internal/worker"
	"github.com/iudanet/solarsync/pkg/api"
)

const clientsURL = "https://api.airtable.test/v0/appTEST/Clients"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestOutbox(t *testing.T) *boltdb.Storage {
	t.Helper()

	s, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

type fakeInbox chan worker.Message

func (f fakeInbox) Messages() <-chan worker.Message { return f }

type countingCache struct {
	calls atomic.Int32
}

func (c *countingCache) Invalidate(context.Context) error {
	c.calls.Add(1)
	return nil
}

func respond(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(`{}`)),
	}
}

func queued(method, url, body string) *models.QueuedRequest {
	return &models.QueuedRequest{
		URL:    url,
		Method: method,
		Body:   body,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Authorization": "Bearer pat.secret",
		},
		Timestamp: time.Now().UnixMilli(),
	}
}

func TestService_EnqueueDropsCredentials(t *testing.T) {
	ctx := context.Background()
	s := NewService(newTestOutbox(t), newTestLogger())

	id, err := s.Enqueue(ctx, queued(http.MethodPost, clientsURL, `{"fields":{}}`))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "application/json", list[0].Headers["Content-Type"])
	assert.NotContains(t, list[0].Headers, "Authorization")

	pending, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestService_EnqueueStorageError(t *testing.T) {
	mock := &storage.OutboxStorageMock{
		EnqueueFunc: func(ctx context.Context, req *models.QueuedRequest) error {
			return errors.New("disk full")
		},
	}
	s := NewService(mock, newTestLogger())

	_, err := s.Enqueue(context.Background(), queued(http.MethodPost, clientsURL, ""))
	assert.Error(t, err)
}

func TestService_Listen(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewService(newTestOutbox(t), newTestLogger())
	inbox := make(fakeInbox, 4)

	var syncs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- s.Listen(ctx, inbox, func(context.Context) error {
			syncs.Add(1)
			return nil
		})
	}()

	inbox <- worker.Message{Type: worker.MessageQueueRequest, Data: queued(http.MethodPatch, clientsURL+"/rec00000000000001", `{}`)}
	inbox <- worker.Message{Type: worker.MessageQueueRequest}
	inbox <- worker.Message{Type: worker.MessageStartSync}
	close(inbox)

	require.NoError(t, <-done)
	assert.Equal(t, int32(1), syncs.Load())

	pending, err := s.Pending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestService_ListenStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewService(newTestOutbox(t), newTestLogger())

	done := make(chan error, 1)
	go func() {
		done <- s.Listen(ctx, make(fakeInbox), nil)
	}()

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestService_ReplayOldestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewService(newTestOutbox(t), newTestLogger())

	clients := &countingCache{}
	products := &countingCache{}
	s.Route("/v0/appTEST/Clients", clients)
	s.Route("/v0/appTEST/Products", products)

	_, err := s.Enqueue(ctx, queued(http.MethodPost, clientsURL, `{"n":1}`))
	require.NoError(t, err)
	_, err = s.Enqueue(ctx, queued(http.MethodPatch, clientsURL+"/rec00000000000001", `{"n":2}`))
	require.NoError(t, err)

	var bodies []string
	doer := &DoerMock{
		DoFunc: func(req *http.Request) (*http.Response, error) {
			assert.Empty(t, req.Header.Get("Authorization"))
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			body, _ := io.ReadAll(req.Body)
			bodies = append(bodies, string(body))
			return respond(http.StatusOK), nil
		},
	}

	result, err := s.Replay(ctx, doer)
	require.NoError(t, err)
	assert.Equal(t, &ReplayResult{Sent: 2}, result)
	assert.Equal(t, []string{`{"n":1}`, `{"n":2}`}, bodies)

	calls := doer.DoCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPost, calls[0].Req.Method)
	assert.Equal(t, http.MethodPatch, calls[1].Req.Method)

	assert.Equal(t, int32(2), clients.calls.Load())
	assert.Zero(t, products.calls.Load())

	pending, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)
}

func TestService_ReplayRejected(t *testing.T) {
	ctx := context.Background()
	s := NewService(newTestOutbox(t), newTestLogger())
	clients := &countingCache{}
	s.Route("/v0/appTEST/Clients", clients)

	_, err := s.Enqueue(ctx, queued(http.MethodPost, clientsURL, `{}`))
	require.NoError(t, err)

	doer := &DoerMock{
		DoFunc: func(req *http.Request) (*http.Response, error) {
			return respond(http.StatusUnprocessableEntity), nil
		},
	}

	result, err := s.Replay(ctx, doer)
	require.NoError(t, err)
	assert.Equal(t, &ReplayResult{Rejected: 1, Remaining: 1}, result)
	assert.Zero(t, clients.calls.Load())

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Attempts)
	assert.Contains(t, list[0].LastError, "422")
}

func TestService_ReplayStopsOnTransportError(t *testing.T) {
	ctx := context.Background()
	s := NewService(newTestOutbox(t), newTestLogger())

	for range 3 {
		_, err := s.Enqueue(ctx, queued(http.MethodDelete, clientsURL+"/rec00000000000001", ""))
		require.NoError(t, err)
	}

	doer := &DoerMock{
		DoFunc: func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("network is unreachable")
		},
	}

	result, err := s.Replay(ctx, doer)
	require.Error(t, err)
	assert.Equal(t, 3, result.Remaining)
	assert.Len(t, doer.DoCalls(), 1)

	list, err := s.List(ctx)
	require.NoError(t, err)
	for _, q := range list {
		assert.Zero(t, q.Attempts)
	}
}

func TestService_ReplayInterceptedAgain(t *testing.T) {
	ctx := context.Background()
	s := NewService(newTestOutbox(t), newTestLogger())

	_, err := s.Enqueue(ctx, queued(http.MethodPost, clientsURL, `{}`))
	require.NoError(t, err)

	doer := &DoerMock{
		DoFunc: func(req *http.Request) (*http.Response, error) {
			resp := respond(http.StatusOK)
			resp.Header.Set(api.QueuedHeader, "1")
			return resp, nil
		},
	}

	_, err = s.Replay(ctx, doer)
	require.Error(t, err)

	pending, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestService_ReplayEmpty(t *testing.T) {
	s := NewService(newTestOutbox(t), newTestLogger())

	result, err := s.Replay(context.Background(), &DoerMock{})
	require.NoError(t, err)
	assert.Equal(t, &ReplayResult{}, result)
}
