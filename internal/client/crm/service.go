// Package crm groups the per-entity accessors and implements the operations
// that touch more than one entity.
package crm

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/iudanet/solarsync/internal/client/accessor"
	"github.com/iudanet/solarsync/internal/client/api"
	"github.com/iudanet/solarsync/internal/models"
	pkgapi "github.com/iudanet/solarsync/pkg/api"
)

// Service holds one accessor per entity type
type Service struct {
	Products      *accessor.Accessor[models.Product]
	Clients       *accessor.Accessor[models.Client]
	Installations *accessor.Accessor[models.Installation]
	Sessions      *accessor.Accessor[models.Session]
	logger        *slog.Logger
}

// NewService создает фасад над аксессорами
func NewService(
	products *accessor.Accessor[models.Product],
	clients *accessor.Accessor[models.Client],
	installations *accessor.Accessor[models.Installation],
	sessions *accessor.Accessor[models.Session],
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Products:      products,
		Clients:       clients,
		Installations: installations,
		Sessions:      sessions,
		logger:        logger,
	}
}

// Accessors returns all accessors in AllEntities order
func (s *Service) Accessors() []accessor.Handle {
	return []accessor.Handle{s.Products, s.Clients, s.Installations, s.Sessions}
}

// Accessor returns the accessor of an entity type
func (s *Service) Accessor(entity models.EntityType) (accessor.Handle, error) {
	for _, h := range s.Accessors() {
		if h.Entity() == entity {
			return h, nil
		}
	}
	return nil, fmt.Errorf("unknown entity type: %s", entity)
}

// LinkInstallation links a client and an installation.
// The remote API keeps both sides of a linked field in sync, so only the
// client record is patched; both caches are invalidated.
func (s *Service) LinkInstallation(ctx context.Context, clientID, installationID string) error {
	return s.changeLink(ctx, clientID, installationID, models.AddLink)
}

// UnlinkInstallation removes the link between a client and an installation
func (s *Service) UnlinkInstallation(ctx context.Context, clientID, installationID string) error {
	return s.changeLink(ctx, clientID, installationID, models.RemoveLink)
}

func (s *Service) changeLink(ctx context.Context, clientID, installationID string, change func([]string, string) []string) error {
	// Берем актуальный список связей с сервера, а не из кеша
	res, err := s.Clients.Get(ctx, accessor.GetOptions{Force: true})
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}
	if res.Offline {
		return fmt.Errorf("cannot change links: %w", api.ErrOffline)
	}
	if res.Err != nil {
		return fmt.Errorf("failed to load clients: %w", res.Err)
	}

	idx := slices.IndexFunc(res.Items, func(c models.Client) bool { return c.ID == clientID })
	if idx < 0 {
		return fmt.Errorf("client %s not found", clientID)
	}
	client := res.Items[idx]

	links := change(client.Installations, installationID)
	if slices.Equal(links, client.Installations) {
		s.logger.Debug("Link already in requested state", "client", clientID, "installation", installationID)
		return nil
	}

	if _, err := s.Clients.Update(ctx, clientID, pkgapi.Fields{api.FieldInstallations: links}); err != nil {
		return fmt.Errorf("failed to update client %s: %w", clientID, err)
	}

	// Обратная сторона связи изменилась на сервере
	if err := s.Installations.Invalidate(ctx); err != nil {
		return fmt.Errorf("failed to invalidate installations: %w", err)
	}

	s.logger.Info("Client links updated", "client", clientID, "installation", installationID, "links", len(links))
	return nil
}

// Wait blocks until all background refreshes settle
func (s *Service) Wait() {
	for _, h := range s.Accessors() {
		h.Wait()
	}
}
