package crm

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/solarsync/internal/client/accessor"
	"github.com/iudanet/solarsync/internal/models"
	pkgapi "github.com/iudanet/solarsync/pkg/api"
)

// Listing is a read result with the items converted to models.Record
type Listing struct {
	Err       error
	Items     []models.Record
	FromCache bool
	IsStale   bool
	Offline   bool
}

// List reads the collection of entity
func (s *Service) List(ctx context.Context, entity models.EntityType, force bool) (*Listing, error) {
	opts := accessor.GetOptions{Force: force}
	switch entity {
	case models.EntityProducts:
		return list(ctx, s.Products, opts)
	case models.EntityClients:
		return list(ctx, s.Clients, opts)
	case models.EntityInstallations:
		return list(ctx, s.Installations, opts)
	case models.EntitySessions:
		return list(ctx, s.Sessions, opts)
	default:
		return nil, fmt.Errorf("unknown entity type: %s", entity)
	}
}

// Create creates a record of entity
func (s *Service) Create(ctx context.Context, entity models.EntityType, fields pkgapi.Fields) (models.Record, error) {
	switch entity {
	case models.EntityProducts:
		return erase(s.Products.Create(ctx, fields))
	case models.EntityClients:
		return erase(s.Clients.Create(ctx, fields))
	case models.EntityInstallations:
		return erase(s.Installations.Create(ctx, fields))
	case models.EntitySessions:
		return erase(s.Sessions.Create(ctx, fields))
	default:
		return nil, fmt.Errorf("unknown entity type: %s", entity)
	}
}

// Update patches a record of entity
func (s *Service) Update(ctx context.Context, entity models.EntityType, id string, fields pkgapi.Fields) (models.Record, error) {
	switch entity {
	case models.EntityProducts:
		return erase(s.Products.Update(ctx, id, fields))
	case models.EntityClients:
		return erase(s.Clients.Update(ctx, id, fields))
	case models.EntityInstallations:
		return erase(s.Installations.Update(ctx, id, fields))
	case models.EntitySessions:
		return erase(s.Sessions.Update(ctx, id, fields))
	default:
		return nil, fmt.Errorf("unknown entity type: %s", entity)
	}
}

// Delete removes a record of entity
func (s *Service) Delete(ctx context.Context, entity models.EntityType, id string) error {
	switch entity {
	case models.EntityProducts:
		return s.Products.Delete(ctx, id)
	case models.EntityClients:
		return s.Clients.Delete(ctx, id)
	case models.EntityInstallations:
		return s.Installations.Delete(ctx, id)
	case models.EntitySessions:
		return s.Sessions.Delete(ctx, id)
	default:
		return fmt.Errorf("unknown entity type: %s", entity)
	}
}

// Statuses returns the last refresh outcome of every entity, nil when not tracked
func (s *Service) Statuses(ctx context.Context) map[models.EntityType]*models.SyncStatus {
	out := make(map[models.EntityType]*models.SyncStatus, len(s.Accessors()))
	for _, h := range s.Accessors() {
		out[h.Entity()] = h.Status(ctx)
	}
	return out
}

// InvalidateAll drops the cache of every entity
func (s *Service) InvalidateAll(ctx context.Context) error {
	var errs []error
	for _, h := range s.Accessors() {
		if err := h.Invalidate(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", h.Entity(), err))
		}
	}
	return errors.Join(errs...)
}

func list[T models.Record](ctx context.Context, a *accessor.Accessor[T], opts accessor.GetOptions) (*Listing, error) {
	res, err := a.Get(ctx, opts)
	if err != nil {
		return nil, err
	}

	items := make([]models.Record, len(res.Items))
	for i, item := range res.Items {
		items[i] = item
	}
	return &Listing{
		Err:       res.Err,
		Items:     items,
		FromCache: res.FromCache,
		IsStale:   res.IsStale,
		Offline:   res.Offline,
	}, nil
}

// erase сохраняет запись вместе с ошибкой инвалидации
func erase[T models.Record](item T, err error) (models.Record, error) {
	if item.GetID() == "" {
		return nil, err
	}
	return item, err
}
