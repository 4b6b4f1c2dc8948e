// Package server собирает Airtable-совместимый dev-сервер из handlers и middleware
package server

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/solarsync/internal/server/handlers"
	"github.com/iudanet/solarsync/internal/server/middleware"
	"github.com/iudanet/solarsync/internal/server/storage"
)

// Deps зависимости роутера
type Deps struct {
	Logger  *slog.Logger
	Records storage.RecordStorage
	DB      handlers.Pinger
	Tokens  middleware.TokenValidator
	Limiter *middleware.RateLimiter
	Version string
}

// NewRouter возвращает http.Handler со всеми маршрутами.
// Порядок: recovery → tracing → logging → rate limit → auth (только /v0/).
func NewRouter(deps Deps) http.Handler {
	api := http.NewServeMux()
	handlers.NewRecordsHandler(deps.Logger, deps.Records).Register(api)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handlers.NewHealthHandler(deps.Logger, deps.Version, deps.DB).Health)
	mux.Handle("/v0/", middleware.AuthMiddleware(deps.Logger, deps.Tokens)(api))

	var h http.Handler = mux
	if deps.Limiter != nil {
		h = middleware.RateLimitMiddleware(deps.Limiter, deps.Logger)(h)
	}
	h = middleware.LoggingWithSkip(deps.Logger, []string{"/health"})(h)
	h = middleware.TracingMiddleware(nil, nil)(h)
	h = middleware.RecoveryMiddleware(deps.Logger)(h)

	return h
}
