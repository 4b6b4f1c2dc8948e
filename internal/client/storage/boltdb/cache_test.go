package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/solarsync/internal/client/storage"
)

func TestStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	// Пустой результат для отсутствующих ключей
	got, err := store.Get(ctx, "clients_cache", "clients_cache_timestamp")
	require.NoError(t, err)
	assert.Empty(t, got)

	err = store.Put(ctx, map[string][]byte{
		"clients_cache":           []byte(`[{"id":"rec1"}]`),
		"clients_cache_timestamp": []byte("1700000000000"),
	})
	require.NoError(t, err)

	got, err = store.Get(ctx, "clients_cache", "clients_cache_timestamp", "unknown")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, `[{"id":"rec1"}]`, string(got["clients_cache"]))
	assert.Equal(t, "1700000000000", string(got["clients_cache_timestamp"]))

	require.NoError(t, store.Delete(ctx, "clients_cache", "clients_cache_timestamp"))

	got, err = store.Get(ctx, "clients_cache")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Удаление отсутствующих ключей не ошибка
	assert.NoError(t, store.Delete(ctx, "clients_cache"))
}

func TestStorage_Get_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.Put(ctx, map[string][]byte{"k": []byte("value")}))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	got["k"][0] = 'X'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "value", string(again["k"]))
}

func TestStorage_Cache_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketCache)
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, "k")
	assert.ErrorContains(t, err, "cache bucket not found")

	err = store.Put(ctx, map[string][]byte{"k": nil})
	assert.ErrorContains(t, err, "cache bucket not found")

	err = store.Delete(ctx, "k")
	assert.ErrorContains(t, err, "cache bucket not found")
}

func TestStorage_Cache_Closed(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	require.NoError(t, store.Close())

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.Put(ctx, map[string][]byte{"k": []byte("v")}), storage.ErrStorageClosed)
	assert.ErrorIs(t, store.Delete(ctx, "k"), storage.ErrStorageClosed)
}
