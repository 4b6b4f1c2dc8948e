package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/solarsync/pkg/api"
)

func TestNew_ReopenKeepsRecords(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "records.db")

	first, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Ping(ctx))
	require.NoError(t, first.CreateRecord(ctx, newRecord("recAAAAAAAAAAAAAA", "Clients", api.Fields{"Name": "Ann"})))
	require.NoError(t, first.Close())

	// Повторные миграции на той же базе ничего не ломают
	second, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.GetRecord(ctx, "appTEST", "Clients", "recAAAAAAAAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Fields["Name"])
}

func TestNew_InvalidPath(t *testing.T) {
	_, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "records.db"))
	assert.Error(t, err)
}
