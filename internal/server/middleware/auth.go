package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/solarsync/internal/server/handlers"
	"github.com/iudanet/solarsync/internal/server/jwt"
)

// TokenValidator проверяет bearer токен
type TokenValidator interface {
	Validate(token string) (*jwt.Claims, error)
}

// AuthMiddleware создает middleware для проверки JWT токена.
// Claims кладутся в контекст, доступ к базе проверяет handler.
func AuthMiddleware(logger *slog.Logger, validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header", "path", r.URL.Path)
				handlers.WriteError(w, logger, http.StatusUnauthorized, handlers.ErrTypeAuthRequired,
					"Authentication required: missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				logger.Warn("Invalid Authorization header format", "path", r.URL.Path)
				handlers.WriteError(w, logger, http.StatusUnauthorized, handlers.ErrTypeAuthRequired,
					"Authentication required: invalid token format")
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				handlers.WriteError(w, logger, http.StatusUnauthorized, handlers.ErrTypeAuthRequired,
					"Authentication required: invalid token")
				return
			}

			logger.Debug("Token accepted", "subject", claims.Subject, "bases", claims.Bases)

			next.ServeHTTP(w, r.WithContext(handlers.WithClaims(r.Context(), claims)))
		})
	}
}
