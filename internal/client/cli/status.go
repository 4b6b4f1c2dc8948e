package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/solarsync/internal/models"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	switch {
	case isAuth:
		authData, err := c.authService.GetAuthEncryptData(ctx)
		if err != nil {
			return fmt.Errorf("failed to get auth data: %w", err)
		}
		c.io.Println("Login:    stored token")
		c.io.Printf("Base:     %s\n", authData.BaseID)
		c.io.Printf("API URL:  %s\n", authData.BaseURL)
		c.io.Printf("Saved at: %s\n", time.Unix(authData.SavedAt, 0).Format(time.RFC3339))
	case c.opts.Token != "":
		c.io.Println("Login:    token from SOLARSYNC_API_TOKEN")
	default:
		c.io.Println("Login:    not authenticated")
		c.io.Println()
		c.io.Println("Run 'solarsync login' to save an API token.")
		return nil
	}

	stack, err := c.open(ctx)
	if err != nil {
		return err
	}

	c.io.Println()
	if stack.Online() {
		c.io.Println("Network:  online")
	} else {
		c.io.Println("Network:  offline")
	}

	c.io.Println()
	c.io.Println("Caches:")
	statuses := stack.CRM.Statuses(ctx)
	for _, entity := range models.AllEntities() {
		c.printSyncStatus(entity, statuses[entity])
	}

	pending, err := stack.Sync.GetPendingSyncCount(ctx)
	if err != nil {
		c.io.Printf("\nWarning: Failed to get pending sync count: %v\n", err)
		return nil
	}

	c.io.Println()
	if pending > 0 {
		c.io.Printf("⚠️  Pending sync: %d request(s) queued while offline\n", pending)
		c.io.Println("Run 'solarsync sync' to send them.")
	} else {
		c.io.Println("✓ No queued requests")
	}

	return nil
}

func (c *Cli) printSyncStatus(entity models.EntityType, status *models.SyncStatus) {
	if status == nil {
		c.io.Printf("  %-14s no status recorded\n", entity)
		return
	}

	at := time.UnixMilli(status.Timestamp).Format(time.RFC3339)
	if status.Success {
		c.io.Printf("  %-14s %d record(s), refreshed %s\n", entity, status.Count, at)
		return
	}
	c.io.Printf("  %-14s failed %s: %s\n", entity, at, status.Error)
}
