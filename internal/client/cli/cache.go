package cli

import (
	"context"
	"errors"
	"fmt"
)

func (c *Cli) runClearCache(ctx context.Context) error {
	stack, err := c.open(ctx)
	if err != nil {
		return err
	}

	var errs []error
	if err := stack.CRM.InvalidateAll(ctx); err != nil {
		errs = append(errs, err)
	}
	if stack.Caches != nil {
		if err := stack.Caches.ClearCaches(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to clear caches: %w", err)
	}

	c.io.Println("✓ Caches cleared")
	return nil
}
