package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/solarsync/internal/client/accessor"
	"github.com/iudanet/solarsync/internal/client/outbox"
	"github.com/iudanet/solarsync/internal/models"
)

var errRemote = errors.New("remote unavailable")

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// handle возвращает мок аксессора с заданным результатом Refresh
func handle(entity models.EntityType, count int, err error, order *[]string) *accessor.HandleMock {
	return &accessor.HandleMock{
		EntityFunc: func() models.EntityType { return entity },
		RefreshFunc: func(ctx context.Context) (int, error) {
			if order != nil {
				*order = append(*order, "refresh")
			}
			return count, err
		},
	}
}

func TestSync_ReplaysThenRefreshes(t *testing.T) {
	ctx := context.Background()

	var order []string
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, doer outbox.Doer) (*outbox.ReplayResult, error) {
			order = append(order, "replay")
			return &outbox.ReplayResult{Sent: 2, Rejected: 1, Remaining: 1}, nil
		},
	}
	doer := &outbox.DoerMock{}

	// refresh вызывается из горутин, поэтому порядок пишем только в одном
	handles := []accessor.Handle{
		handle(models.EntityProducts, 3, nil, &order),
		handle(models.EntityClients, 5, nil, nil),
	}

	svc := NewService(replayer, doer, handles, newTestLogger())

	result, err := svc.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"replay", "refresh"}, order)
	require.Len(t, replayer.ReplayCalls(), 1)
	assert.Same(t, doer, replayer.ReplayCalls()[0].Doer)

	assert.Equal(t, 2, result.Replayed)
	assert.Equal(t, 1, result.Rejected)
	assert.Equal(t, 1, result.Pending)
	assert.Equal(t, []EntityResult{
		{Entity: models.EntityProducts, Count: 3},
		{Entity: models.EntityClients, Count: 5},
	}, result.Entities)
	assert.Empty(t, result.Failed())
}

func TestSync_PartialFailure(t *testing.T) {
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, doer outbox.Doer) (*outbox.ReplayResult, error) {
			return &outbox.ReplayResult{}, nil
		},
	}
	handles := []accessor.Handle{
		handle(models.EntityProducts, 3, nil, nil),
		handle(models.EntitySessions, 0, errRemote, nil),
	}

	svc := NewService(replayer, &outbox.DoerMock{}, handles, newTestLogger())

	result, err := svc.Sync(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errRemote)
	require.NotNil(t, result)

	failed := result.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, models.EntitySessions, failed[0].Entity)
	assert.Equal(t, 3, result.Entities[0].Count)
}

func TestSync_ReplayErrorStillRefreshes(t *testing.T) {
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, doer outbox.Doer) (*outbox.ReplayResult, error) {
			return &outbox.ReplayResult{Sent: 1, Remaining: 2}, errRemote
		},
	}
	products := handle(models.EntityProducts, 4, nil, nil)

	svc := NewService(replayer, &outbox.DoerMock{}, []accessor.Handle{products}, newTestLogger())

	result, err := svc.Sync(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errRemote)
	assert.ErrorIs(t, result.ReplayErr, errRemote)
	assert.Equal(t, 1, result.Replayed)
	assert.Equal(t, 2, result.Pending)
	assert.Len(t, products.RefreshCalls(), 1)
}

func TestGetPendingSyncCount(t *testing.T) {
	replayer := &ReplayerMock{
		PendingFunc: func(ctx context.Context) (int, error) {
			return 7, nil
		},
	}
	svc := NewService(replayer, nil, nil, newTestLogger())

	count, err := svc.GetPendingSyncCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestGetPendingSyncCount_StorageError(t *testing.T) {
	replayer := &ReplayerMock{
		PendingFunc: func(ctx context.Context) (int, error) {
			return 0, errors.New("database closed")
		},
	}
	svc := NewService(replayer, nil, nil, newTestLogger())

	_, err := svc.GetPendingSyncCount(context.Background())
	assert.Error(t, err)
}
