package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/solarsync/internal/client/storage"
	"github.com/iudanet/solarsync/internal/client/storage/boltdb"
)

const (
	testBaseID     = "appABCDEFGHIJKLMN"
	testToken      = "patXXXXXXXXXXXXXX.0123456789abcdef"
	testPassphrase = "correct horse battery"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T) Service {
	t.Helper()

	s, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return NewService(s, newTestLogger())
}

func validCreds() Credentials {
	return Credentials{
		BaseURL:    "https://api.airtable.com",
		BaseID:     testBaseID,
		Token:      testToken,
		Passphrase: testPassphrase,
	}
}

func TestService_LoginToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	auth, err := svc.Login(ctx, validCreds())
	require.NoError(t, err)
	assert.NotContains(t, auth.Token, testToken)
	assert.NotEmpty(t, auth.Salt)
	assert.NotZero(t, auth.SavedAt)

	token, err := svc.Token(ctx, testPassphrase)
	require.NoError(t, err)
	assert.Equal(t, testToken, token)

	stored, err := svc.GetAuthEncryptData(ctx)
	require.NoError(t, err)
	assert.Equal(t, testBaseID, stored.BaseID)
	assert.Equal(t, auth.Token, stored.Token)
}

func TestService_TokenWrongPassphrase(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Login(ctx, validCreds())
	require.NoError(t, err)

	_, err = svc.Token(ctx, "another long passphrase")
	assert.ErrorIs(t, err, ErrWrongPassphrase)
}

func TestService_TokenBoundToBase(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	auth, err := svc.Login(ctx, validCreds())
	require.NoError(t, err)

	// подмена base id в хранилище ломает расшифровку
	mock := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			moved := *auth
			moved.BaseID = "appZZZZZZZZZZZZZZ"
			return &moved, nil
		},
	}
	moved := NewService(mock, newTestLogger())

	_, err = moved.Token(ctx, testPassphrase)
	assert.ErrorIs(t, err, ErrWrongPassphrase)
}

func TestService_LoginValidation(t *testing.T) {
	tests := []struct {
		modify func(c *Credentials)
		name   string
	}{
		{name: "empty base url", modify: func(c *Credentials) { c.BaseURL = "" }},
		{name: "bad base id", modify: func(c *Credentials) { c.BaseID = "base1" }},
		{name: "empty token", modify: func(c *Credentials) { c.Token = "" }},
		{name: "short passphrase", modify: func(c *Credentials) { c.Passphrase = "short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &storage.AuthStorageMock{}
			svc := NewService(mock, newTestLogger())

			creds := validCreds()
			tt.modify(&creds)

			_, err := svc.Login(context.Background(), creds)
			assert.Error(t, err)
			assert.Empty(t, mock.SaveAuthCalls())
		})
	}
}

func TestService_LoginStorageError(t *testing.T) {
	mock := &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			return errors.New("disk full")
		},
	}
	svc := NewService(mock, newTestLogger())

	_, err := svc.Login(context.Background(), validCreds())
	assert.Error(t, err)
}

func TestService_IsAuthenticatedLogout(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	ok, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Token(ctx, testPassphrase)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	_, err = svc.Login(ctx, validCreds())
	require.NoError(t, err)

	ok, err = svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.Logout(ctx))

	ok, err = svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	err = svc.Logout(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestService_IsAuthenticatedStorageError(t *testing.T) {
	mock := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, storage.ErrStorageClosed
		},
	}
	svc := NewService(mock, newTestLogger())

	_, err := svc.IsAuthenticated(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
