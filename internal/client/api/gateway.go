package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/solarsync/internal/connectivity"
	"github.com/iudanet/solarsync/internal/models"
	"github.com/iudanet/solarsync/internal/validation"
	"github.com/iudanet/solarsync/pkg/api"
)

// Gateway performs the authoritative operations of one entity type
// against the remote API.
type Gateway[T models.Record] struct {
	client  *Client
	monitor *connectivity.Monitor
	schema  Schema[T]
	table   string
}

// NewGateway creates a gateway. An empty table falls back to the schema's default.
func NewGateway[T models.Record](client *Client, monitor *connectivity.Monitor, schema Schema[T], table string) *Gateway[T] {
	if table == "" {
		table = schema.DefaultTable
	}
	return &Gateway[T]{
		client:  client,
		monitor: monitor,
		schema:  schema,
		table:   table,
	}
}

// Entity returns the entity type served by the gateway
func (g *Gateway[T]) Entity() models.EntityType {
	return g.schema.Entity
}

// Schema returns the wire schema of the entity
func (g *Gateway[T]) Schema() Schema[T] {
	return g.schema
}

// TablePath returns the URL path of the entity's table
func (g *Gateway[T]) TablePath() string {
	return g.client.TablePath(g.table)
}

// FetchAll reads the whole table. It does not consult the monitor: callers
// only come here once they decided to go to the network.
// Pages are followed until the remote API stops returning an offset.
// When any page came from the offline interceptor's cache, the items are
// returned together with an error wrapping ErrFromCache.
func (g *Gateway[T]) FetchAll(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	offset := ""
	var cached error

	for {
		page, err := g.client.ListRecords(ctx, g.table, offset)
		if err != nil {
			if !errors.Is(err, ErrFromCache) {
				return nil, err
			}
			cached = err
		}

		for _, rec := range page.Records {
			item, err := g.schema.Decode(rec)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", g.schema.Entity, err)
			}
			items = append(items, item)
		}

		if page.Offset == "" {
			return items, cached
		}
		offset = page.Offset
	}
}

// Create creates a record. Fails fast with ErrOffline while offline.
func (g *Gateway[T]) Create(ctx context.Context, fields api.Fields) (T, error) {
	var zero T
	if err := g.requireOnline(); err != nil {
		return zero, err
	}

	rec, err := g.client.CreateRecord(ctx, g.table, fields)
	if err != nil {
		return zero, err
	}
	return g.decode(*rec)
}

// Update patches a record. Fails fast with ErrOffline while offline.
func (g *Gateway[T]) Update(ctx context.Context, id string, fields api.Fields) (T, error) {
	var zero T
	if err := validation.ValidateRecordID(id); err != nil {
		return zero, err
	}
	if err := g.requireOnline(); err != nil {
		return zero, err
	}

	rec, err := g.client.UpdateRecord(ctx, g.table, id, fields)
	if err != nil {
		return zero, err
	}
	return g.decode(*rec)
}

// Delete removes a record. Fails fast with ErrOffline while offline.
func (g *Gateway[T]) Delete(ctx context.Context, id string) error {
	if err := validation.ValidateRecordID(id); err != nil {
		return err
	}
	if err := g.requireOnline(); err != nil {
		return err
	}

	resp, err := g.client.DeleteRecord(ctx, g.table, id)
	if err != nil {
		return err
	}
	if !resp.Deleted {
		return fmt.Errorf("remote API did not confirm deletion of %s", id)
	}
	return nil
}

func (g *Gateway[T]) requireOnline() error {
	if g.monitor != nil && !g.monitor.IsOnline() {
		return fmt.Errorf("%s: %w", g.schema.Entity, ErrOffline)
	}
	return nil
}

func (g *Gateway[T]) decode(rec api.Record) (T, error) {
	item, err := g.schema.Decode(rec)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to parse %s: %w", g.schema.Entity, err)
	}
	return item, nil
}
