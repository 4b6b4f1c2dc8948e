package storage

import (
	"context"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing the remote API credentials on client.
// This is the lowest storage layer - it works with raw data (token already encrypted)
// and doesn't perform any encryption/decryption itself.
type AuthStorage interface {
	// SaveAuth stores authentication data as-is (token should already be encrypted)
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data as-is
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error
}

// AuthData represents the saved connection to the remote base.
// In storage Token is base64(nonce+ciphertext); plaintext only in memory.
type AuthData struct {
	BaseURL string `json:"base_url"`
	BaseID  string `json:"base_id"`
	Token   string `json:"token"`
	Salt    string `json:"salt"`
	SavedAt int64  `json:"saved_at"`
}
