package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/solarsync/internal/worker/respcache"
	"github.com/iudanet/solarsync/pkg/api"
)

const (
	testOrigin  = "https://app.solarsync.test"
	testAPIHost = "api.airtable.test"
)

var errNetwork = errors.New("dial tcp: network is unreachable")

// fakeNetwork отвечает по таблице URL → тело и считает обращения
type fakeNetwork struct {
	mu      sync.Mutex
	offline bool
	status  map[string]int
	bodies  map[string]string
	calls   map[string]int
	seen    []*http.Request
}

func newFakeNetwork() *fakeNetwork {
	return &fakeNetwork{
		status: make(map[string]int),
		bodies: make(map[string]string),
		calls:  make(map[string]int),
	}
}

func (n *fakeNetwork) serve(url string, status int, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.status[url] = status
	n.bodies[url] = body
}

func (n *fakeNetwork) setOffline(offline bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.offline = offline
}

func (n *fakeNetwork) callCount(url string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[url]
}

func (n *fakeNetwork) RoundTrip(req *http.Request) (*http.Response, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	url := req.URL.String()
	n.calls[url]++
	n.seen = append(n.seen, req)

	if n.offline {
		return nil, errNetwork
	}

	status, ok := n.status[url]
	if !ok {
		status = http.StatusNotFound
	}

	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"text/plain"}},
		Body:       io.NopCloser(strings.NewReader(n.bodies[url])),
		Request:    req,
	}, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCaches(t *testing.T) *respcache.BoltStorage {
	t.Helper()

	caches, err := respcache.OpenBolt(filepath.Join(t.TempDir(), "responses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = caches.Close() })

	return caches
}

func testConfig() Config {
	return Config{
		APIHost:     testAPIHost,
		Origin:      testOrigin,
		CachePrefix: "solarsync",
		Version:     "v2",
		ShellFiles:  []string{"/", "/app.js"},
		SkipWaiting: true,
	}
}

// startWorker запускает актор до конца теста
func startWorker(t *testing.T, cfg Config, caches respcache.Storage, network http.RoundTripper) *Worker {
	t.Helper()

	w, err := New(cfg, caches, network, newTestLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-stopped
	})

	return w
}

func shellNetwork() *fakeNetwork {
	network := newFakeNetwork()
	network.serve(testOrigin+"/", http.StatusOK, "<html>root</html>")
	network.serve(testOrigin+"/app.js", http.StatusOK, "console.log(1)")
	return network
}

// installedWorker возвращает активированный воркер
func installedWorker(t *testing.T, network *fakeNetwork) (*Worker, *respcache.BoltStorage) {
	t.Helper()

	caches := newTestCaches(t)
	w := startWorker(t, testConfig(), caches, network)
	require.NoError(t, w.Install(context.Background()))
	require.Equal(t, StateActivated, w.State())

	return w, caches
}

func expectNoMessage(t *testing.T, port *Port) {
	t.Helper()

	select {
	case msg, ok := <-port.Messages():
		if ok {
			t.Fatalf("unexpected message %s", msg.Type)
		}
	case <-time.After(20 * time.Millisecond):
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "new", StateNew.String())
	assert.Equal(t, "activated", StateActivated.String())
	assert.Equal(t, "state(42)", State(42).String())
}

func TestConfig_CacheNames(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, "solarsync-v2", cfg.ShellCache())
	assert.Equal(t, "solarsync-api-v2", cfg.APICache())
}

func TestNew_Defaults(t *testing.T) {
	w, err := New(Config{Origin: testOrigin}, newTestCaches(t), nil, newTestLogger())
	require.NoError(t, err)

	assert.Equal(t, "solarsync-v1", w.Config().ShellCache())
	assert.Equal(t, http.DefaultTransport, w.network)
	assert.Equal(t, StateNew, w.State())
}

func TestInstall_PrecachesAndActivates(t *testing.T) {
	ctx := context.Background()
	network := shellNetwork()
	_, caches := installedWorker(t, network)

	got, err := caches.Match(ctx, "solarsync-v2", "GET "+testOrigin+"/app.js")
	require.NoError(t, err)
	assert.Equal(t, "console.log(1)", string(got.Body))

	_, err = caches.Match(ctx, "solarsync-v2", "GET "+testOrigin+"/")
	require.NoError(t, err)
}

func TestInstall_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	network := newFakeNetwork()
	network.serve(testOrigin+"/", http.StatusOK, "root")
	// /app.js отдает 404

	caches := newTestCaches(t)
	w := startWorker(t, testConfig(), caches, network)

	err := w.Install(ctx)
	require.Error(t, err)
	assert.Equal(t, StateNew, w.State())

	names, err := caches.Names(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	// повторная установка возможна
	network.serve(testOrigin+"/app.js", http.StatusOK, "js")
	require.NoError(t, w.Install(ctx))
	assert.Equal(t, StateActivated, w.State())
}

func TestInstall_Twice(t *testing.T) {
	w, _ := installedWorker(t, shellNetwork())

	err := w.Install(context.Background())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestActivate_DeletesOtherVersions(t *testing.T) {
	ctx := context.Background()
	caches := newTestCaches(t)
	old := &respcache.Response{StatusCode: http.StatusOK, Body: []byte("old")}
	require.NoError(t, caches.Put(ctx, "solarsync-v1", "GET /", old))
	require.NoError(t, caches.Put(ctx, "solarsync-api-v1", "GET /x", old))
	require.NoError(t, caches.Put(ctx, "solarsync-api-v2", "GET /x", old))

	cfg := testConfig()
	cfg.SkipWaiting = false
	w := startWorker(t, cfg, caches, shellNetwork())

	require.NoError(t, w.Install(ctx))
	assert.Equal(t, StateInstalled, w.State())

	require.NoError(t, w.Activate(ctx))
	assert.Equal(t, StateActivated, w.State())

	names, err := caches.Names(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"solarsync-v2", "solarsync-api-v2"}, names)

	// повторная активация ничего не делает
	require.NoError(t, w.Activate(ctx))
}

func TestActivate_BeforeInstall(t *testing.T) {
	w := startWorker(t, testConfig(), newTestCaches(t), shellNetwork())

	err := w.Activate(context.Background())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSkipWaiting_ClaimsWaitingPorts(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.SkipWaiting = false
	w := startWorker(t, cfg, newTestCaches(t), shellNetwork())

	port, err := w.Connect(ctx)
	require.NoError(t, err)
	defer port.Close()

	require.NoError(t, w.Install(ctx))

	// страница еще не под контролем воркера
	delivered, err := w.Sync(ctx, SyncTag)
	require.NoError(t, err)
	assert.Zero(t, delivered)

	require.NoError(t, port.Post(ctx, Message{Type: MessageSkipWaiting}))
	assert.Equal(t, StateActivated, w.State())

	delivered, err = w.Sync(ctx, SyncTag)
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)

	msg := <-port.Messages()
	assert.Equal(t, MessageStartSync, msg.Type)
	assert.Nil(t, msg.Data)
}

func TestSkipWaiting_IgnoredWhenNotInstalled(t *testing.T) {
	ctx := context.Background()
	w := startWorker(t, testConfig(), newTestCaches(t), shellNetwork())

	port, err := w.Connect(ctx)
	require.NoError(t, err)

	require.NoError(t, port.Post(ctx, Message{Type: MessageSkipWaiting}))
	assert.Equal(t, StateNew, w.State())
}

func TestSync_UnknownTag(t *testing.T) {
	w, _ := installedWorker(t, shellNetwork())

	_, err := w.Sync(context.Background(), "something-else")
	assert.Error(t, err)
}

func TestSync_BroadcastsToEveryPort(t *testing.T) {
	ctx := context.Background()
	w, _ := installedWorker(t, shellNetwork())

	first, err := w.Connect(ctx)
	require.NoError(t, err)
	second, err := w.Connect(ctx)
	require.NoError(t, err)

	delivered, err := w.Sync(ctx, SyncTag)
	require.NoError(t, err)
	assert.Equal(t, 2, delivered)

	for _, port := range []*Port{first, second} {
		msg := <-port.Messages()
		assert.Equal(t, MessageStartSync, msg.Type)
		expectNoMessage(t, port)
	}
}

func TestClearCache(t *testing.T) {
	ctx := context.Background()
	w, caches := installedWorker(t, shellNetwork())

	port, err := w.Connect(ctx)
	require.NoError(t, err)

	require.NoError(t, port.Post(ctx, Message{Type: MessageClearCache}))

	names, err := caches.Names(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestPost_UnsupportedMessage(t *testing.T) {
	ctx := context.Background()
	w, _ := installedWorker(t, shellNetwork())

	port, err := w.Connect(ctx)
	require.NoError(t, err)

	err = port.Post(ctx, Message{Type: MessageQueueRequest})
	assert.ErrorIs(t, err, ErrUnsupportedMessage)
}

func TestPort_Close(t *testing.T) {
	ctx := context.Background()
	w, _ := installedWorker(t, shellNetwork())

	port, err := w.Connect(ctx)
	require.NoError(t, err)

	port.Close()
	port.Close()

	_, ok := <-port.Messages()
	assert.False(t, ok)

	delivered, err := w.Sync(ctx, SyncTag)
	require.NoError(t, err)
	assert.Zero(t, delivered)
}

func TestBroadcast_FullBufferDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	w, _ := installedWorker(t, shellNetwork())

	port, err := w.Connect(ctx)
	require.NoError(t, err)

	for range portBuffer {
		_, err := w.Sync(ctx, SyncTag)
		require.NoError(t, err)
	}

	delivered, err := w.Sync(ctx, SyncTag)
	require.NoError(t, err)
	assert.Zero(t, delivered)
	assert.Len(t, port.Messages(), portBuffer)
}

func TestRun_StopClosesPorts(t *testing.T) {
	w, err := New(testConfig(), newTestCaches(t), shellNetwork(), newTestLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		w.Run(ctx)
	}()

	port, err := w.Connect(context.Background())
	require.NoError(t, err)

	cancel()
	<-stopped

	_, ok := <-port.Messages()
	assert.False(t, ok)

	_, err = w.Connect(context.Background())
	assert.ErrorIs(t, err, ErrStopped)
	assert.ErrorIs(t, port.Post(context.Background(), Message{Type: MessageClearCache}), ErrStopped)
	port.Close()
}

func TestCall_ContextCancelled(t *testing.T) {
	// Run не запущен, актор никогда не примет запрос
	w, err := New(testConfig(), newTestCaches(t), shellNetwork(), newTestLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = w.Connect(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestInstall_StoreFailureDropsCache(t *testing.T) {
	errDisk := errors.New("disk full")
	caches := &respcache.StorageMock{
		PutFunc: func(ctx context.Context, cacheName, key string, resp *respcache.Response) error {
			return errDisk
		},
		DeleteFunc: func(ctx context.Context, cacheName string) error {
			return nil
		},
		NamesFunc: func(ctx context.Context) ([]string, error) {
			return nil, nil
		},
	}

	w := startWorker(t, testConfig(), caches, shellNetwork())

	err := w.Install(context.Background())
	require.ErrorIs(t, err, errDisk)
	assert.Equal(t, StateNew, w.State())

	require.Len(t, caches.DeleteCalls(), 1)
	assert.Equal(t, "solarsync-v2", caches.DeleteCalls()[0].CacheName)
	// кеша прошлой установки нет, восстанавливать нечего
	assert.Len(t, caches.NamesCalls(), 1)
}

func TestInstall_OfflineRestartReusesCaches(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "responses.db")
	clients := "https://" + testAPIHost + "/v0/appTEST/Clients"

	network := shellNetwork()
	network.serve(clients, http.StatusOK, `{"records":[]}`)

	// первый запуск: установка по сети и кеширование ответа API
	caches, err := respcache.OpenBolt(path)
	require.NoError(t, err)
	first := startWorker(t, testConfig(), caches, network)
	require.NoError(t, first.Install(ctx))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, clients, nil)
	require.NoError(t, err)
	resp, err := first.Transport().RoundTrip(req)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, caches.Close())

	// второй запуск с тем же файлом и без сети
	network.setOffline(true)
	reopened, err := respcache.OpenBolt(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	cfg := testConfig()
	cfg.SkipWaiting = false
	second := startWorker(t, cfg, reopened, network)

	require.NoError(t, second.Install(ctx))
	assert.Equal(t, StateActivated, second.State())

	port, err := second.Connect(ctx)
	require.NoError(t, err)

	resp, err = second.Transport().RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get(api.CachedHeader))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, `{"records":[]}`, string(body))

	write, err := http.NewRequestWithContext(ctx, http.MethodPost, clients, strings.NewReader(`{"fields":{}}`))
	require.NoError(t, err)
	resp, err = second.Transport().RoundTrip(write)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get(api.QueuedHeader))
	require.NoError(t, resp.Body.Close())

	msg := <-port.Messages()
	assert.Equal(t, MessageQueueRequest, msg.Type)
}

func TestInstall_OfflineWithoutPreviousInstall(t *testing.T) {
	network := shellNetwork()
	network.setOffline(true)
	w := startWorker(t, testConfig(), newTestCaches(t), network)

	err := w.Install(context.Background())
	require.ErrorIs(t, err, errNetwork)
	assert.Equal(t, StateNew, w.State())
}
