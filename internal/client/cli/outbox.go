package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runOutbox(ctx context.Context) error {
	stack, err := c.open(ctx)
	if err != nil {
		return err
	}

	queued, err := stack.Outbox.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list queued requests: %w", err)
	}

	if len(queued) == 0 {
		c.io.Println("✓ No queued requests")
		return nil
	}

	c.io.Printf("Queued requests: %d\n", len(queued))
	c.io.Println()
	for i, q := range queued {
		c.io.Printf("%d. %s %s\n", i+1, q.Method, q.URL)
		c.io.Printf("   Queued at: %s\n", time.UnixMilli(q.Timestamp).Format(time.RFC3339))
		if q.Attempts > 0 {
			c.io.Printf("   Attempts:  %d\n", q.Attempts)
		}
		if q.LastError != "" {
			c.io.Printf("   Error:     %s\n", q.LastError)
		}
	}

	c.io.Println()
	c.io.Println("Run 'solarsync sync' when back online.")
	return nil
}
