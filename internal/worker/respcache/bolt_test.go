package respcache

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBolt(t *testing.T) *BoltStorage {
	t.Helper()

	s, err := OpenBolt(filepath.Join(t.TempDir(), "responses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func okResponse(body string) *Response {
	return &Response{
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       []byte(body),
		StatusCode: http.StatusOK,
	}
}

func TestBoltStorage_PutMatch(t *testing.T) {
	ctx := context.Background()
	s := newTestBolt(t)

	require.NoError(t, s.Put(ctx, "api-v1", "GET /x", okResponse("one")))

	got, err := s.Match(ctx, "api-v1", "GET /x")
	require.NoError(t, err)
	assert.Equal(t, "one", string(got.Body))

	_, err = s.Match(ctx, "api-v1", "GET /y")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Match(ctx, "missing", "GET /x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoltStorage_MatchAll(t *testing.T) {
	ctx := context.Background()
	s := newTestBolt(t)

	require.NoError(t, s.Put(ctx, "shell-v1", "GET /index.html", okResponse("shell")))
	require.NoError(t, s.Put(ctx, "api-v1", "GET /v0/app/Clients", okResponse("clients")))

	got, err := s.MatchAll(ctx, "GET /v0/app/Clients")
	require.NoError(t, err)
	assert.Equal(t, "clients", string(got.Body))

	_, err = s.MatchAll(ctx, "GET /nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoltStorage_NamesDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestBolt(t)

	require.NoError(t, s.Put(ctx, "b", "k", okResponse("1")))
	require.NoError(t, s.Put(ctx, "a", "k", okResponse("2")))

	names, err := s.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "never-existed"))

	names, err = s.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names)
}

func TestCaptureAndHTTPResponse(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusCreated,
		Header:     http.Header{"X-Test": {"1"}, "Content-Length": {"5"}},
		Body:       io.NopCloser(strings.NewReader("hello")),
	}

	stored, err := Capture(resp)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(stored.Body))

	// тело исходного ответа должно остаться читаемым
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))

	req, err := http.NewRequest(http.MethodGet, "http://example.test/", nil)
	require.NoError(t, err)

	out := stored.HTTPResponse(req)
	assert.Equal(t, http.StatusCreated, out.StatusCode)
	assert.Equal(t, "1", out.Header.Get("X-Test"))
	assert.Empty(t, out.Header.Get("Content-Length"))
	assert.Equal(t, int64(5), out.ContentLength)
	assert.Same(t, req, out.Request)
}
