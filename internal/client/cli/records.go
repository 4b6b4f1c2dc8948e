package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/iudanet/solarsync/internal/client/accessor"
	"github.com/iudanet/solarsync/internal/client/api"
	"github.com/iudanet/solarsync/internal/models"
	"github.com/iudanet/solarsync/internal/validation"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(c.io)
	force := fs.Bool("force", false, "Bypass the cache and read from the network")

	// Флаг допускается и до, и после имени сущности
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("missing entity type. Usage: solarsync list <products|clients|installations|sessions> [-force]")
	}
	if err := fs.Parse(rest[1:]); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	entity, err := models.ParseEntity(rest[0])
	if err != nil {
		return err
	}

	stack, err := c.open(ctx)
	if err != nil {
		return err
	}

	listing, err := stack.CRM.List(ctx, entity, *force)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", entity, err)
	}

	c.io.Printf("=== %s ===\n", title(entity))
	c.io.Println()

	if listing.Offline {
		c.io.Println("⚠️  Offline: showing cached data")
	}
	if listing.Err != nil {
		if errors.Is(listing.Err, accessor.ErrNoCache) {
			c.io.Printf("No cached %s available offline.\n", entity)
			return nil
		}
		c.io.Printf("⚠️  Refresh failed, showing cached data: %v\n", listing.Err)
	}
	if listing.IsStale {
		c.io.Printf("⚠️  Cached data is older than %s\n", entity.TTL())
	}

	if len(listing.Items) == 0 {
		c.io.Printf("No %s found.\n", entity)
		return nil
	}

	c.io.Printf("Found %d %s:\n", len(listing.Items), entity)
	c.io.Println()
	for i, item := range listing.Items {
		c.printRecord(i+1, item)
	}

	return nil
}

func (c *Cli) runCreate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: solarsync create <entity> Field=Value...")
	}

	entity, err := models.ParseEntity(args[0])
	if err != nil {
		return err
	}
	fields, err := parseFields(args[1:])
	if err != nil {
		return err
	}

	stack, err := c.open(ctx)
	if err != nil {
		return err
	}

	record, err := stack.CRM.Create(ctx, entity, fields)
	return c.reportWrite("Created", entity, record, err)
}

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: solarsync update <entity> <id> Field=Value...")
	}

	entity, err := models.ParseEntity(args[0])
	if err != nil {
		return err
	}
	id := args[1]
	if err := validation.ValidateRecordID(id); err != nil {
		return err
	}
	fields, err := parseFields(args[2:])
	if err != nil {
		return err
	}

	stack, err := c.open(ctx)
	if err != nil {
		return err
	}

	record, err := stack.CRM.Update(ctx, entity, id, fields)
	return c.reportWrite("Updated", entity, record, err)
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: solarsync delete <entity> <id>")
	}

	entity, err := models.ParseEntity(args[0])
	if err != nil {
		return err
	}
	id := args[1]
	if err := validation.ValidateRecordID(id); err != nil {
		return err
	}

	stack, err := c.open(ctx)
	if err != nil {
		return err
	}

	err = stack.CRM.Delete(ctx, entity, id)
	if errors.Is(err, api.ErrQueued) {
		c.printQueued()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", entity, id, err)
	}

	c.io.Printf("✓ Deleted %s %s\n", entity, id)
	return nil
}

// reportWrite печатает итог записи. Запись без ID означает, что запрос не
// выполнен; запись вместе с ошибкой означает, что не сброшен кеш.
func (c *Cli) reportWrite(verb string, entity models.EntityType, record models.Record, err error) error {
	if errors.Is(err, api.ErrQueued) {
		c.printQueued()
		return nil
	}
	if record == nil {
		if err == nil {
			err = errors.New("empty response")
		}
		return fmt.Errorf("failed to write %s: %w", entity, err)
	}

	c.io.Printf("✓ %s %s %s\n", verb, entity, record.GetID())
	if err != nil {
		c.io.Printf("⚠️  Cache was not invalidated: %v\n", err)
	}
	c.io.Println()
	c.printRecord(1, record)
	return nil
}

func (c *Cli) printQueued() {
	c.io.Println("⚠️  Offline: the request is queued and will be sent on the next sync.")
	c.io.Println("Run 'solarsync outbox' to see queued requests.")
}
