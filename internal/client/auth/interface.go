package auth

import (
	"context"

	"github.com/iudanet/solarsync/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service manages the API token kept at rest.
// The token is stored encrypted with a key derived from a passphrase; the
// passphrase itself is never stored.
type Service interface {
	// Login шифрует токен паролем и сохраняет вместе с адресом базы
	Login(ctx context.Context, creds Credentials) (*storage.AuthData, error)

	// Token расшифровывает сохраненный токен
	Token(ctx context.Context, passphrase string) (string, error)

	// GetAuthEncryptData returns stored data without decrypting the token
	GetAuthEncryptData(ctx context.Context) (*storage.AuthData, error)

	// IsAuthenticated checks whether a token has been saved
	IsAuthenticated(ctx context.Context) (bool, error)

	// Logout удаляет сохраненный токен
	Logout(ctx context.Context) error
}
