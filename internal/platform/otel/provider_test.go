package otel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/solarsync/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), "solarsync-test", "dev", "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, shutdown(ctx))
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Немаршрутизируемый адрес: экспорт не происходит
	shutdown, err := otel.Setup(context.Background(), "solarsync-test", "dev", "http://192.0.2.1:4318")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
