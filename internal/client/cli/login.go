package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/solarsync/internal/client/auth"
)

// DefaultAPIURL адрес Airtable, предлагается при login
const DefaultAPIURL = "https://api.airtable.com"

// ErrPassphraseMismatch подтверждение пароля не совпало
var ErrPassphraseMismatch = errors.New("passphrases do not match")

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	baseURL := c.opts.APIURL
	if baseURL == "" {
		input, err := c.io.ReadInput(fmt.Sprintf("API URL [%s]: ", DefaultAPIURL))
		if err != nil {
			return fmt.Errorf("failed to read API URL: %w", err)
		}
		baseURL = input
		if baseURL == "" {
			baseURL = DefaultAPIURL
		}
	}

	baseID := c.opts.BaseID
	if baseID == "" {
		input, err := c.io.ReadInput("Base ID: ")
		if err != nil {
			return fmt.Errorf("failed to read base ID: %w", err)
		}
		baseID = input
	}

	token := c.opts.Token
	if token == "" {
		input, err := c.io.ReadPassword("API token: ")
		if err != nil {
			return fmt.Errorf("failed to read API token: %w", err)
		}
		token = input
	}

	passphrase, err := c.newPassphrase()
	if err != nil {
		return err
	}

	authData, err := c.authService.Login(ctx, auth.Credentials{
		BaseURL:    baseURL,
		BaseID:     baseID,
		Token:      token,
		Passphrase: passphrase,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Token saved")
	c.io.Printf("Base:     %s\n", authData.BaseID)
	c.io.Printf("API URL:  %s\n", authData.BaseURL)
	c.io.Printf("Saved at: %s\n", time.Unix(authData.SavedAt, 0).Format(time.RFC3339))
	c.io.Println()
	c.io.Println("The passphrase is not stored. Set SOLARSYNC_PASSPHRASE to skip the prompt.")

	return nil
}

// newPassphrase берет пароль из окружения или спрашивает дважды
func (c *Cli) newPassphrase() (string, error) {
	if c.opts.Passphrase != "" {
		return c.opts.Passphrase, nil
	}

	passphrase, err := c.io.ReadPassword("Passphrase: ")
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm passphrase: ")
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	if passphrase != confirm {
		return "", ErrPassphraseMismatch
	}

	return passphrase, nil
}
