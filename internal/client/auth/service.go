package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/solarsync/internal/client/storage"
	"github.com/iudanet/solarsync/internal/crypto"
	"github.com/iudanet/solarsync/internal/validation"
)

// ErrWrongPassphrase the passphrase does not open the stored token
var ErrWrongPassphrase = errors.New("wrong passphrase")

// Credentials вводятся при login
type Credentials struct {
	BaseURL    string
	BaseID     string
	Token      string
	Passphrase string
}

type service struct {
	storage storage.AuthStorage
	logger  *slog.Logger
	now     func() time.Time
}

// Compile-time check that service implements Service
var _ Service = (*service)(nil)

// NewService создает новый сервис авторизации
func NewService(authStorage storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		storage: authStorage,
		logger:  logger,
		now:     time.Now,
	}
}

// Login encrypts the token and saves it.
// The base ID is bound as additional data, so a token cannot be moved to
// another base record without failing decryption.
func (s *service) Login(ctx context.Context, creds Credentials) (*storage.AuthData, error) {
	if creds.BaseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	if err := validation.ValidateBaseID(creds.BaseID); err != nil {
		return nil, fmt.Errorf("invalid base id: %w", err)
	}
	if creds.Token == "" {
		return nil, fmt.Errorf("API token cannot be empty")
	}
	if err := validation.ValidatePassphrase(creds.Passphrase); err != nil {
		return nil, fmt.Errorf("invalid passphrase: %w", err)
	}

	// 1. Генерируем соль
	salt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	// 2. Деривируем ключ из пароля
	key, err := crypto.DeriveKeyFromBase64Salt(creds.Passphrase, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	// 3. Шифруем токен
	sealed, err := crypto.SealString(creds.Token, key, []byte(creds.BaseID))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt token: %w", err)
	}

	auth := &storage.AuthData{
		BaseURL: creds.BaseURL,
		BaseID:  creds.BaseID,
		Token:   sealed,
		Salt:    salt,
		SavedAt: s.now().Unix(),
	}
	if err := s.storage.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Info("API token saved",
		"base_url", creds.BaseURL,
		"base_id", creds.BaseID,
		"token", crypto.Fingerprint(creds.Token))

	return auth, nil
}

// Token decrypts the stored token
func (s *service) Token(ctx context.Context, passphrase string) (string, error) {
	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		return "", err
	}

	key, err := crypto.DeriveKeyFromBase64Salt(passphrase, auth.Salt)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	token, err := crypto.OpenString(auth.Token, key, []byte(auth.BaseID))
	if errors.Is(err, crypto.ErrDecrypt) {
		return "", ErrWrongPassphrase
	}
	if err != nil {
		return "", fmt.Errorf("failed to decrypt token: %w", err)
	}

	return token, nil
}

// GetAuthEncryptData загружает данные без расшифровки токена
func (s *service) GetAuthEncryptData(ctx context.Context) (*storage.AuthData, error) {
	return s.storage.GetAuth(ctx)
}

// IsAuthenticated проверяет наличие сохраненного токена
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.storage.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Logout удаляет локальные данные авторизации
func (s *service) Logout(ctx context.Context) error {
	if err := s.storage.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete auth data: %w", err)
	}
	s.logger.Info("API token removed")
	return nil
}
