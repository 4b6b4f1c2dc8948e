// Package respcache stores HTTP responses in named caches keyed by request,
// the way the offline interceptor needs them.
package respcache

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
)

// ErrNotFound no cached response for the key
var ErrNotFound = errors.New("cached response not found")

//go:generate moq -out storage_mock.go . Storage

// Storage is a set of named response caches
type Storage interface {
	// Match looks up key in one cache
	Match(ctx context.Context, cacheName, key string) (*Response, error)
	// MatchAll looks up key in every cache, in name order
	MatchAll(ctx context.Context, key string) (*Response, error)
	// Put stores resp under key, creating the cache if needed
	Put(ctx context.Context, cacheName, key string, resp *Response) error
	// Names lists existing caches
	Names(ctx context.Context) ([]string, error)
	// Delete drops a whole cache. Missing caches are ignored.
	Delete(ctx context.Context, cacheName string) error
}

// Response is a stored HTTP response
type Response struct {
	Header     http.Header
	Body       []byte
	StatusCode int
}

// Key builds the cache key of a request
func Key(r *http.Request) string {
	u := *r.URL
	u.Fragment = ""
	return r.Method + " " + u.String()
}

// Capture reads resp's body into a Response and re-arms resp.Body so the
// caller can still return resp.
func Capture(resp *http.Response) (*Response, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	return &Response{
		Header:     resp.Header.Clone(),
		Body:       body,
		StatusCode: resp.StatusCode,
	}, nil
}

// HTTPResponse builds a response for req from the stored one
func (r *Response) HTTPResponse(req *http.Request) *http.Response {
	header := r.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	header.Del("Content-Length")

	return &http.Response{
		Status:        strconv.Itoa(r.StatusCode) + " " + http.StatusText(r.StatusCode),
		StatusCode:    r.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(r.Body)),
		ContentLength: int64(len(r.Body)),
		Request:       req,
	}
}
