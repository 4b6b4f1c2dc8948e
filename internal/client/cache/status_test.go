package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/solarsync/internal/models"
)

func TestStatusStore(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	clock := &fakeClock{now: time.UnixMilli(5000)}
	status := NewStatusStore(kv, models.EntityProducts, newTestLogger(), WithClock(clock.Now))

	assert.Nil(t, status.Last(ctx))

	require.NoError(t, status.RecordSuccess(ctx, 42))
	assert.Equal(t, &models.SyncStatus{Success: true, Timestamp: 5000, Count: 42}, status.Last(ctx))

	clock.Advance(time.Second)
	require.NoError(t, status.RecordFailure(ctx, errors.New("status 500")))
	assert.Equal(t, &models.SyncStatus{Success: false, Timestamp: 6000, Error: "status 500"}, status.Last(ctx))

	// Статус хранится под отдельным ключом
	values, err := kv.Get(ctx, "products_sync_status")
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"timestamp":6000,"error":"status 500"}`, string(values["products_sync_status"]))
}

func TestStatusStore_Corrupt(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	require.NoError(t, kv.Put(ctx, map[string][]byte{"products_sync_status": []byte("{")}))

	status := NewStatusStore(kv, models.EntityProducts, newTestLogger())
	assert.Nil(t, status.Last(ctx))
}
