package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/solarsync/internal/models"
	"github.com/iudanet/solarsync/internal/worker/respcache"
	"github.com/iudanet/solarsync/pkg/api"
)

const (
	queuedMessage  = "Request queued for sync when online"
	noCacheMessage = "No cached data available"
)

// Transport returns the intercepting RoundTripper
func (w *Worker) Transport() http.RoundTripper {
	return &transport{worker: w}
}

type transport struct {
	worker *Worker
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	w := t.worker

	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return w.network.RoundTrip(req)
	}
	if w.State() != StateActivated {
		return w.network.RoundTrip(req)
	}

	if w.isAPI(req.URL) {
		return w.handleAPI(req)
	}
	return w.handleStatic(req)
}

// handleAPI: сначала сеть, при ошибке запись ставится в очередь,
// чтение обслуживается из кеша API
func (w *Worker) handleAPI(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	body, err := readBody(req)
	if err != nil {
		return nil, err
	}

	out := req.Clone(ctx)
	if body != nil {
		out.Body = io.NopCloser(bytes.NewReader(body))
		out.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		out.ContentLength = int64(len(body))
	}

	resp, netErr := w.network.RoundTrip(out)
	if netErr == nil {
		if req.Method == http.MethodGet {
			w.store(ctx, w.cfg.APICache(), req, resp)
		}
		return resp, nil
	}

	// отмена вызывающей стороной не означает отсутствие сети
	if ctx.Err() != nil {
		return nil, netErr
	}

	if req.Method != http.MethodGet {
		return w.queue(req, body, netErr)
	}

	cached, err := w.caches.Match(ctx, w.cfg.APICache(), respcache.Key(req))
	if err == nil {
		w.logger.Debug("serving cached API response", "url", req.URL.String())
		resp := cached.HTTPResponse(req)
		resp.Header.Set(api.CachedHeader, "1")
		return resp, nil
	}
	if !errors.Is(err, respcache.ErrNotFound) {
		w.logger.Warn("failed to read API cache", "url", req.URL.String(), "error", err)
	}

	return jsonResponse(req, http.StatusServiceUnavailable, api.OfflineResponse{
		Error:   noCacheMessage,
		Offline: true,
	}, nil)
}

// queue hands the failed write to the pages and acknowledges it. Nothing
// is acknowledged when no page could take the request.
func (w *Worker) queue(req *http.Request, body []byte, netErr error) (*http.Response, error) {
	queued := &models.QueuedRequest{
		URL:       req.URL.String(),
		Method:    req.Method,
		Headers:   flattenHeader(req.Header),
		Body:      string(body),
		Timestamp: time.Now().UnixMilli(),
	}

	delivered, err := w.Broadcast(req.Context(), Message{Type: MessageQueueRequest, Data: queued})
	if err != nil || delivered == 0 {
		w.logger.Warn("write failed and no page accepted it",
			"method", req.Method,
			"url", queued.URL,
			"error", netErr)
		return nil, netErr
	}

	w.logger.Info("write queued",
		"method", req.Method,
		"url", queued.URL,
		"ports", delivered)

	header := http.Header{}
	header.Set(api.QueuedHeader, "1")

	return jsonResponse(req, http.StatusOK, api.OfflineResponse{
		Message: queuedMessage,
		Offline: true,
		Queued:  true,
	}, header)
}

// handleStatic: cache-first по всем кешам
func (w *Worker) handleStatic(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if req.Method == http.MethodGet {
		cached, err := w.caches.MatchAll(ctx, respcache.Key(req))
		if err == nil {
			return cached.HTTPResponse(req), nil
		}
		if !errors.Is(err, respcache.ErrNotFound) {
			w.logger.Warn("failed to read cache", "url", req.URL.String(), "error", err)
		}
	}

	resp, err := w.network.RoundTrip(req)
	if err != nil {
		if isNavigation(req) {
			root, rerr := w.caches.MatchAll(ctx, http.MethodGet+" "+w.origin.String())
			if rerr == nil {
				w.logger.Debug("serving cached root document", "url", req.URL.String())
				return root.HTTPResponse(req), nil
			}
		}
		return nil, err
	}

	if resp.StatusCode == http.StatusOK && req.Method == http.MethodGet {
		w.store(ctx, w.cfg.ShellCache(), req, resp)
	}

	return resp, nil
}

// store кладет копию ответа в кеш; ошибки кеша не мешают вернуть ответ
func (w *Worker) store(ctx context.Context, cacheName string, req *http.Request, resp *http.Response) {
	stored, err := respcache.Capture(resp)
	if err != nil {
		w.logger.Warn("failed to read response for cache", "url", req.URL.String(), "error", err)
		return
	}
	if err := w.caches.Put(ctx, cacheName, respcache.Key(req), stored); err != nil {
		w.logger.Warn("failed to cache response", "cache", cacheName, "url", req.URL.String(), "error", err)
	}
}

func readBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()
	return io.ReadAll(req.Body)
}

func isNavigation(req *http.Request) bool {
	if req.Method != http.MethodGet {
		return false
	}
	if req.Header.Get("Sec-Fetch-Mode") == "navigate" {
		return true
	}
	return strings.Contains(req.Header.Get("Accept"), "text/html")
}

func flattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		out[name] = strings.Join(values, ", ")
	}
	return out
}

func jsonResponse(req *http.Request, status int, body any, header http.Header) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	if header == nil {
		header = http.Header{}
	}
	header.Set("Content-Type", "application/json")

	resp := &respcache.Response{Header: header, Body: data, StatusCode: status}
	return resp.HTTPResponse(req), nil
}
