package accessor

import (
	"context"

	"github.com/iudanet/solarsync/internal/models"
)

// Handle is the type-erased view of an Accessor for operations that iterate
// over every entity type.
type Handle interface {
	Entity() models.EntityType
	Refresh(ctx context.Context) (int, error)
	Invalidate(ctx context.Context) error
	Status(ctx context.Context) *models.SyncStatus
	Wait()
}

var (
	_ Handle = (*Accessor[models.Product])(nil)
	_ Handle = (*Accessor[models.Client])(nil)
)
