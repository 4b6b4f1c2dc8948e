package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/solarsync/internal/client/api"
	"github.com/iudanet/solarsync/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	stack, err := c.open(ctx)
	if err != nil {
		return err
	}
	if !stack.Online() {
		return fmt.Errorf("cannot synchronize: %w", api.ErrOffline)
	}

	c.io.Println("Starting synchronization with server...")

	result, err := stack.Sync.Sync(ctx)
	if result != nil {
		c.printSyncResult(result)
	}
	if err != nil {
		return fmt.Errorf("synchronization finished with errors: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed successfully")
	return nil
}

func (c *Cli) printSyncResult(result *sync.SyncResult) {
	c.io.Println()
	c.io.Printf("Replayed from queue: %d request(s)\n", result.Replayed)
	if result.Rejected > 0 {
		c.io.Printf("Rejected by server:  %d request(s)\n", result.Rejected)
	}
	if result.Pending > 0 {
		c.io.Printf("Still queued:        %d request(s)\n", result.Pending)
	}
	if result.ReplayErr != nil {
		c.io.Printf("Replay error:        %v\n", result.ReplayErr)
	}

	c.io.Println()
	for _, e := range result.Entities {
		if e.Err != nil {
			c.io.Printf("  %-14s failed: %v\n", e.Entity, e.Err)
			continue
		}
		c.io.Printf("  %-14s %d record(s)\n", e.Entity, e.Count)
	}
}
