package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/solarsync/pkg/api"
)

// Типы ошибок в формате Airtable
const (
	ErrTypeAuthRequired   = "AUTHENTICATION_REQUIRED"
	ErrTypeForbidden      = "INVALID_PERMISSIONS_OR_MODEL_NOT_FOUND"
	ErrTypeNotFound       = "NOT_FOUND"
	ErrTypeInvalidRequest = "INVALID_REQUEST_UNKNOWN"
	ErrTypeInvalidBody    = "INVALID_REQUEST_BODY"
	ErrTypeInvalidOffset  = "INVALID_OFFSET_VALUE"
	ErrTypeRateLimited    = "RATE_LIMIT_REACHED"
	ErrTypeServerError    = "SERVER_ERROR"
)

// WriteJSON отправляет JSON ответ
func WriteJSON(w http.ResponseWriter, logger *slog.Logger, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// WriteError отправляет ошибку в формате {"error":{"type":..,"message":..}}
func WriteError(w http.ResponseWriter, logger *slog.Logger, statusCode int, errType, message string) {
	WriteJSON(w, logger, api.ErrorResponse{
		Error: api.ErrorDetail{Type: errType, Message: message},
	}, statusCode)
}
