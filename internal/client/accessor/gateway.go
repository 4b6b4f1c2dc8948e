package accessor

import (
	"context"

	"github.com/iudanet/solarsync/pkg/api"
)

//go:generate moq -out gateway_mock.go . Gateway

// Gateway is the remote side of one entity type.
// Implemented by *api.Gateway from internal/client/api.
type Gateway[T any] interface {
	FetchAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, fields api.Fields) (T, error)
	Update(ctx context.Context, id string, fields api.Fields) (T, error)
	Delete(ctx context.Context, id string) error
}
