package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/solarsync/internal/client/storage"
	"github.com/iudanet/solarsync/internal/client/storage/boltdb"
	"github.com/iudanet/solarsync/internal/models"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestKV(t *testing.T) *boltdb.Storage {
	t.Helper()

	kv, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_ReadEmpty(t *testing.T) {
	store := NewStore[models.Product](newTestKV(t), models.EntityProducts, newTestLogger())

	assert.Nil(t, store.Read(context.Background()))

	_, ok := store.Age(context.Background())
	assert.False(t, ok)
}

func TestStore_WriteReadAge(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
	store := NewStore[models.Product](newTestKV(t), models.EntityProducts, newTestLogger(), WithClock(clock.Now))

	products := []models.Product{{ID: "m1", Name: "Panel 400W", Price: 100}}
	require.NoError(t, store.Write(ctx, products))

	entry := store.Read(ctx)
	require.NotNil(t, entry)
	assert.Equal(t, products, entry.Payload)
	assert.Equal(t, int64(1_700_000_000_000), entry.WrittenAt)

	clock.Advance(23 * time.Hour)
	age, ok := store.Age(ctx)
	require.True(t, ok)
	assert.Equal(t, 23*time.Hour, age)
}

func TestStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.UnixMilli(1000)}
	store := NewStore[models.Client](newTestKV(t), models.EntityClients, newTestLogger(), WithClock(clock.Now))

	require.NoError(t, store.Write(ctx, []models.Client{{ID: "rec1"}, {ID: "rec2"}}))
	clock.Advance(time.Second)
	require.NoError(t, store.Write(ctx, []models.Client{{ID: "rec3"}}))

	entry := store.Read(ctx)
	require.NotNil(t, entry)
	assert.Equal(t, []models.Client{{ID: "rec3"}}, entry.Payload)
	assert.Equal(t, int64(2000), entry.WrittenAt)
}

func TestStore_Invalidate(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	store := NewStore[models.Session](kv, models.EntitySessions, newTestLogger())

	require.NoError(t, store.Write(ctx, []models.Session{{ID: "rec1"}}))
	require.NoError(t, store.Invalidate(ctx))

	assert.Nil(t, store.Read(ctx))

	// Удаляется и payload, и timestamp
	values, err := kv.Get(ctx, "sessions_cache", "sessions_cache_timestamp")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestStore_EntitiesAreIndependent(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	clients := NewStore[models.Client](kv, models.EntityClients, newTestLogger())
	installations := NewStore[models.Installation](kv, models.EntityInstallations, newTestLogger())

	require.NoError(t, clients.Write(ctx, []models.Client{{ID: "recC"}}))
	require.NoError(t, installations.Write(ctx, []models.Installation{{ID: "recI"}}))

	require.NoError(t, clients.Invalidate(ctx))

	assert.Nil(t, clients.Read(ctx))
	assert.NotNil(t, installations.Read(ctx))
}

func TestStore_CorruptValues(t *testing.T) {
	tests := []struct {
		values map[string][]byte
		name   string
	}{
		{
			name: "garbage payload",
			values: map[string][]byte{
				"clients_cache":           []byte("{not json"),
				"clients_cache_timestamp": []byte("1700000000000"),
			},
		},
		{
			name: "payload of wrong shape",
			values: map[string][]byte{
				"clients_cache":           []byte(`{"id":"rec1"}`),
				"clients_cache_timestamp": []byte("1700000000000"),
			},
		},
		{
			name: "garbage timestamp",
			values: map[string][]byte{
				"clients_cache":           []byte(`[]`),
				"clients_cache_timestamp": []byte("yesterday"),
			},
		},
		{
			name: "payload without timestamp",
			values: map[string][]byte{
				"clients_cache": []byte(`[]`),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := newTestKV(t)
			require.NoError(t, kv.Put(ctx, tt.values))

			store := NewStore[models.Client](kv, models.EntityClients, newTestLogger())

			assert.NotPanics(t, func() {
				assert.Nil(t, store.Read(ctx))
			})
		})
	}
}

func TestStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	errDisk := errors.New("disk error")
	kv := &storage.KVStorageMock{
		GetFunc: func(ctx context.Context, keys ...string) (map[string][]byte, error) {
			return nil, errDisk
		},
		PutFunc: func(ctx context.Context, values map[string][]byte) error {
			return errDisk
		},
		DeleteFunc: func(ctx context.Context, keys ...string) error {
			return errDisk
		},
	}
	store := NewStore[models.Product](kv, models.EntityProducts, newTestLogger())

	// Чтение не падает, а возвращает промах
	assert.Nil(t, store.Read(ctx))

	assert.ErrorIs(t, store.Write(ctx, []models.Product{{ID: "m1"}}), errDisk)
	assert.ErrorIs(t, store.Invalidate(ctx), errDisk)

	// Payload и timestamp пишутся одним вызовом Put
	require.Len(t, kv.PutCalls(), 1)
	assert.Len(t, kv.PutCalls()[0].Values, 2)
	assert.Equal(t, []string{"products_cache", "products_cache_timestamp"}, kv.DeleteCalls()[0].Keys)
}
