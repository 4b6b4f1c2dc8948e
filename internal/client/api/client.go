package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/iudanet/solarsync/pkg/api"
)

// DefaultTimeout applied to every remote call
const DefaultTimeout = 10 * time.Second

const tracerName = "github.com/iudanet/solarsync/internal/client/api"

// Client представляет HTTP клиент для Airtable-совместимого API
type Client struct {
	httpClient *http.Client
	tracer     trace.Tracer
	baseURL    string
	baseID     string
	token      string
	timeout    time.Duration
}

// Option настраивает Client
type Option func(*Client)

// WithTransport подставляет RoundTripper (например, перехватчик офлайн-запросов)
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// WithTimeout меняет таймаут одного запроса
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithToken задает bearer токен
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient создает новый API клиент для базы baseID
func NewClient(baseURL, baseID string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		baseID:  baseID,
		timeout: DefaultTimeout,
		tracer:  otel.Tracer(tracerName),
		httpClient: &http.Client{
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TablePath returns the URL path of a table in the configured base
func (c *Client) TablePath(table string) string {
	return "/v0/" + url.PathEscape(c.baseID) + "/" + url.PathEscape(table)
}

// ListRecords читает одну страницу таблицы. offset пустой для первой страницы.
// Страница из кеша перехватчика возвращается вместе с ErrFromCache.
func (c *Client) ListRecords(ctx context.Context, table, offset string) (*api.ListResponse, error) {
	path := c.TablePath(table)
	if offset != "" {
		path += "?offset=" + url.QueryEscape(offset)
	}

	var resp api.ListResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		if errors.Is(err, ErrFromCache) {
			return &resp, fmt.Errorf("list %s: %w", table, err)
		}
		return nil, fmt.Errorf("list %s failed: %w", table, err)
	}
	return &resp, nil
}

// CreateRecord создает запись
func (c *Client) CreateRecord(ctx context.Context, table string, fields api.Fields) (*api.Record, error) {
	var resp api.Record
	err := c.doRequest(ctx, http.MethodPost, c.TablePath(table), api.WriteRequest{Fields: fields}, &resp)
	if err != nil {
		return nil, fmt.Errorf("create %s record failed: %w", table, err)
	}
	return &resp, nil
}

// UpdateRecord частично обновляет запись (PATCH)
func (c *Client) UpdateRecord(ctx context.Context, table, id string, fields api.Fields) (*api.Record, error) {
	var resp api.Record
	err := c.doRequest(ctx, http.MethodPatch, c.TablePath(table)+"/"+url.PathEscape(id), api.WriteRequest{Fields: fields}, &resp)
	if err != nil {
		return nil, fmt.Errorf("update %s record %s failed: %w", table, id, err)
	}
	return &resp, nil
}

// DeleteRecord удаляет запись
func (c *Client) DeleteRecord(ctx context.Context, table, id string) (*api.DeleteResponse, error) {
	var resp api.DeleteResponse
	err := c.doRequest(ctx, http.MethodDelete, c.TablePath(table)+"/"+url.PathEscape(id), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("delete %s record %s failed: %w", table, id, err)
	}
	return &resp, nil
}

// Do sends a prepared request with the client's credentials and timeout.
// The caller closes the response body.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx, span := c.tracer.Start(req.Context(), "airtable replay "+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", req.URL.Path),
		),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	out := req.Clone(ctx)
	if c.token != "" {
		out.Header.Set("Authorization", "Bearer "+c.token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(out.Header))

	resp, err := c.httpClient.Do(out)
	if err != nil {
		cancel()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	resp.Body = &cancelBody{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// cancelBody освобождает контекст таймаута при закрытии тела
type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	defer b.cancel()
	return b.ReadCloser.Close()
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) (err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ctx, span := c.tracer.Start(ctx, "airtable "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	// Ответ сформирован перехватчиком: запрос лежит в очереди, записи нет
	if resp.Header.Get(api.QueuedHeader) != "" {
		return ErrQueued
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	// Данные из кеша перехватчика: результат заполнен, но свежесть неизвестна
	if resp.Header.Get(api.CachedHeader) != "" {
		return ErrFromCache
	}

	return nil
}

// newStatusError разбирает тело ошибки. Airtable отдает либо
// {"error":{"type":..,"message":..}}, либо {"error":"TYPE"}.
func newStatusError(status int, body []byte) *StatusError {
	se := &StatusError{StatusCode: status, Body: string(body)}

	var detailed api.ErrorResponse
	if err := json.Unmarshal(body, &detailed); err == nil && detailed.Error.Type != "" {
		se.Type = detailed.Error.Type
		se.Message = detailed.Error.Message
		return se
	}

	var short struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &short); err == nil && short.Error != "" {
		se.Type = short.Error
	}
	return se
}
