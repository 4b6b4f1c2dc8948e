package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/solarsync/internal/connectivity"
	"github.com/iudanet/solarsync/internal/models"
	"github.com/iudanet/solarsync/pkg/api"
)

const testRecordID = "recA1b2C3d4E5f6G7"

func newTestMonitor(online bool) *connectivity.Monitor {
	return connectivity.NewMonitor(online, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGateway_FetchAll_SingleRoundTrip(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v0/appABCDEFGHIJKLMN/Produits", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.ListResponse{Records: []api.Record{
			{ID: "m1", Fields: api.Fields{"Name": "Panel", "Price": 100.0}},
			{ID: "m2", Fields: api.Fields{"Name": "Inverter"}},
		}})
	}))
	defer server.Close()

	gw := NewGateway(NewClient(server.URL, testBaseID), newTestMonitor(true), ProductSchema, "Produits")

	products, err := gw.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Product{
		{ID: "m1", Name: "Panel", Price: 100},
		{ID: "m2", Name: "Inverter"},
	}, products)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, models.EntityProducts, gw.Entity())
}

func TestGateway_FetchAll_FollowsOffset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") == "" {
			_ = json.NewEncoder(w).Encode(api.ListResponse{
				Records: []api.Record{{ID: "rec1", Fields: api.Fields{}}},
				Offset:  "page2",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(api.ListResponse{Records: []api.Record{{ID: "rec2", Fields: api.Fields{}}}})
	}))
	defer server.Close()

	gw := NewGateway(NewClient(server.URL, testBaseID), newTestMonitor(true), SessionSchema, "")

	sessions, err := gw.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "rec2", sessions[1].ID)
}

func TestGateway_FetchAll_ServedFromInterceptorCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") == "" {
			_ = json.NewEncoder(w).Encode(api.ListResponse{
				Records: []api.Record{{ID: "rec1", Fields: api.Fields{}}},
				Offset:  "page2",
			})
			return
		}
		// вторая страница отдана перехватчиком из кеша
		w.Header().Set(api.CachedHeader, "1")
		_ = json.NewEncoder(w).Encode(api.ListResponse{Records: []api.Record{{ID: "rec2", Fields: api.Fields{}}}})
	}))
	defer server.Close()

	gw := NewGateway(NewClient(server.URL, testBaseID), newTestMonitor(true), SessionSchema, "")

	sessions, err := gw.FetchAll(context.Background())
	require.ErrorIs(t, err, ErrFromCache)
	assert.ErrorIs(t, err, connectivity.ErrServedFromCache)
	require.Len(t, sessions, 2)
	assert.Equal(t, "rec2", sessions[1].ID)
}

func TestGateway_FetchAll_Errors(t *testing.T) {
	t.Run("remote error carries body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		}))
		defer server.Close()

		gw := NewGateway(NewClient(server.URL, testBaseID), newTestMonitor(true), ClientSchema, "")
		_, err := gw.FetchAll(context.Background())

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "boom", se.Body)
	})

	t.Run("malformed record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(api.ListResponse{Records: []api.Record{
				{ID: "recC", Fields: api.Fields{"Installations": "not-a-list"}},
			}})
		}))
		defer server.Close()

		gw := NewGateway(NewClient(server.URL, testBaseID), newTestMonitor(true), ClientSchema, "")
		_, err := gw.FetchAll(context.Background())

		var fe *FieldError
		assert.True(t, errors.As(err, &fe))
	})

	t.Run("no connectivity guard", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_ = json.NewEncoder(w).Encode(api.ListResponse{})
		}))
		defer server.Close()

		gw := NewGateway(NewClient(server.URL, testBaseID), newTestMonitor(false), ClientSchema, "")
		_, err := gw.FetchAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestGateway_Mutations_OfflineFailFast(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	ctx := context.Background()
	gw := NewGateway(NewClient(server.URL, testBaseID), newTestMonitor(false), ClientSchema, "")

	_, err := gw.Create(ctx, api.Fields{"Name": "Bob"})
	assert.ErrorIs(t, err, ErrOffline)

	_, err = gw.Update(ctx, testRecordID, api.Fields{"Name": "Bob"})
	assert.ErrorIs(t, err, ErrOffline)

	err = gw.Delete(ctx, testRecordID)
	assert.ErrorIs(t, err, ErrOffline)

	assert.Zero(t, calls.Load())
}

func TestGateway_Mutations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req api.WriteRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			_ = json.NewEncoder(w).Encode(api.Record{ID: testRecordID, Fields: req.Fields})
		case http.MethodPatch:
			assert.Equal(t, "/v0/appABCDEFGHIJKLMN/Clients/"+testRecordID, r.URL.Path)
			_ = json.NewEncoder(w).Encode(api.Record{ID: testRecordID, Fields: api.Fields{"Name": "Renamed"}})
		case http.MethodDelete:
			_ = json.NewEncoder(w).Encode(api.DeleteResponse{ID: testRecordID, Deleted: true})
		}
	}))
	defer server.Close()

	ctx := context.Background()
	gw := NewGateway(NewClient(server.URL, testBaseID), newTestMonitor(true), ClientSchema, "")

	created, err := gw.Create(ctx, api.Fields{"Name": "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "Bob", created.Name)
	assert.Equal(t, []string{}, created.Installations)

	updated, err := gw.Update(ctx, testRecordID, api.Fields{"Name": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	require.NoError(t, gw.Delete(ctx, testRecordID))
}

func TestGateway_InvalidRecordID(t *testing.T) {
	gw := NewGateway(NewClient("http://127.0.0.1:1", testBaseID), newTestMonitor(true), ClientSchema, "")

	_, err := gw.Update(context.Background(), "../../admin", api.Fields{})
	assert.ErrorContains(t, err, "invalid record id")

	err = gw.Delete(context.Background(), "")
	assert.ErrorContains(t, err, "record id cannot be empty")
}
