package crm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/solarsync/internal/client/accessor"
	"github.com/iudanet/solarsync/internal/client/api"
	"github.com/iudanet/solarsync/internal/client/cache"
	"github.com/iudanet/solarsync/internal/client/storage/boltdb"
	"github.com/iudanet/solarsync/internal/connectivity"
	"github.com/iudanet/solarsync/internal/models"
	pkgapi "github.com/iudanet/solarsync/pkg/api"
)

const (
	clientID       = "recCLIENT0000001"
	installationID = "recINSTALL000001"
)

type fixture struct {
	service       *Service
	clients       *accessor.GatewayMock[models.Client]
	installations *accessor.GatewayMock[models.Installation]
	instStore     *cache.Store[models.Installation]
	monitor       *connectivity.Monitor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "crm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	f := &fixture{
		clients:       &accessor.GatewayMock[models.Client]{},
		installations: &accessor.GatewayMock[models.Installation]{},
		monitor:       connectivity.NewMonitor(true, logger),
	}
	f.instStore = cache.NewStore[models.Installation](kv, models.EntityInstallations, logger)

	f.service = NewService(
		accessor.New[models.Product](cache.NewStore[models.Product](kv, models.EntityProducts, logger), &accessor.GatewayMock[models.Product]{}, f.monitor, logger),
		accessor.New[models.Client](cache.NewStore[models.Client](kv, models.EntityClients, logger), f.clients, f.monitor, logger),
		accessor.New[models.Installation](f.instStore, f.installations, f.monitor, logger),
		accessor.New[models.Session](cache.NewStore[models.Session](kv, models.EntitySessions, logger), &accessor.GatewayMock[models.Session]{}, f.monitor, logger),
		logger,
	)
	t.Cleanup(f.service.Wait)
	return f
}

func TestService_Accessors(t *testing.T) {
	f := newFixture(t)

	var entities []models.EntityType
	for _, h := range f.service.Accessors() {
		entities = append(entities, h.Entity())
	}
	assert.Equal(t, models.AllEntities(), entities)

	h, err := f.service.Accessor(models.EntitySessions)
	require.NoError(t, err)
	assert.Equal(t, models.EntitySessions, h.Entity())

	_, err = f.service.Accessor("quotes")
	assert.Error(t, err)
}

func TestService_LinkInstallation_CascadeInvalidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.clients.FetchAllFunc = func(ctx context.Context) ([]models.Client, error) {
		return []models.Client{{ID: clientID, Installations: []string{"recOTHER00000001"}}}, nil
	}
	f.clients.UpdateFunc = func(ctx context.Context, id string, fields pkgapi.Fields) (models.Client, error) {
		return models.Client{ID: id}, nil
	}
	require.NoError(t, f.instStore.Write(ctx, []models.Installation{{ID: installationID}}))

	require.NoError(t, f.service.LinkInstallation(ctx, clientID, installationID))

	require.Len(t, f.clients.UpdateCalls(), 1)
	call := f.clients.UpdateCalls()[0]
	assert.Equal(t, clientID, call.Id)
	assert.Equal(t, pkgapi.Fields{api.FieldInstallations: []string{"recOTHER00000001", installationID}}, call.Fields)

	// Кеш второй стороны связи сброшен
	assert.Nil(t, f.instStore.Read(ctx))
}

func TestService_UnlinkInstallation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.clients.FetchAllFunc = func(ctx context.Context) ([]models.Client, error) {
		return []models.Client{{ID: clientID, Installations: []string{installationID}}}, nil
	}
	f.clients.UpdateFunc = func(ctx context.Context, id string, fields pkgapi.Fields) (models.Client, error) {
		return models.Client{ID: id}, nil
	}

	require.NoError(t, f.service.UnlinkInstallation(ctx, clientID, installationID))
	assert.Equal(t, []string{}, f.clients.UpdateCalls()[0].Fields[api.FieldInstallations])
}

func TestService_LinkInstallation_AlreadyLinked(t *testing.T) {
	f := newFixture(t)
	f.clients.FetchAllFunc = func(ctx context.Context) ([]models.Client, error) {
		return []models.Client{{ID: clientID, Installations: []string{installationID}}}, nil
	}

	require.NoError(t, f.service.LinkInstallation(context.Background(), clientID, installationID))
	assert.Empty(t, f.clients.UpdateCalls())
}

func TestService_LinkInstallation_Errors(t *testing.T) {
	errRemote := errors.New("remote down")

	t.Run("offline", func(t *testing.T) {
		f := newFixture(t)
		f.monitor.Set(false)

		err := f.service.LinkInstallation(context.Background(), clientID, installationID)
		assert.ErrorIs(t, err, api.ErrOffline)
	})

	t.Run("unknown client", func(t *testing.T) {
		f := newFixture(t)
		f.clients.FetchAllFunc = func(ctx context.Context) ([]models.Client, error) {
			return []models.Client{}, nil
		}

		err := f.service.LinkInstallation(context.Background(), clientID, installationID)
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("update fails, installations cache untouched", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		f.clients.FetchAllFunc = func(ctx context.Context) ([]models.Client, error) {
			return []models.Client{{ID: clientID}}, nil
		}
		f.clients.UpdateFunc = func(ctx context.Context, id string, fields pkgapi.Fields) (models.Client, error) {
			return models.Client{}, errRemote
		}
		require.NoError(t, f.instStore.Write(ctx, []models.Installation{{ID: installationID}}))

		err := f.service.LinkInstallation(ctx, clientID, installationID)
		assert.ErrorIs(t, err, errRemote)
		assert.NotNil(t, f.instStore.Read(ctx))
	})
}
