package pull

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/RachelleMaina/stocka-sync/internal/client/api"
	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
	"github.com/RachelleMaina/stocka-sync/internal/models"
	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testSnapshotResponse() *api.SnapshotResponse {
	return &api.SnapshotResponse{
		BusinessLocationID: "biz-1",
		StoreLocationID:    "store-1",
		Items: []api.Item{
			{ID: "item-1", Name: "Maize flour 2kg"},
			{ID: "item-2", Name: "Cooking oil 1l"},
		},
		UoMs:    []api.UoM{{ID: "uom-pcs", Name: "piece"}},
		Prices:  []api.Price{{ItemID: "item-1", StoreLocationID: "store-1", Amount: 150, Currency: "KES"}},
		Version: 42,
	}
}

type fixture struct {
	snapshots *storage.SnapshotStoreMock
	devices   *storage.DeviceStoreMock
	client    *httpClient.ClientAPIMock
}

func newFixture(active *models.ReferenceSnapshot) *fixture {
	return &fixture{
		snapshots: &storage.SnapshotStoreMock{
			ActiveSnapshotFunc: func(ctx context.Context) (*models.ReferenceSnapshot, error) {
				if active == nil {
					return nil, storage.ErrSnapshotNotFound
				}
				return active, nil
			},
			ReplaceSnapshotFunc: func(ctx context.Context, snap *models.ReferenceSnapshot) error {
				return nil
			},
		},
		devices: &storage.DeviceStoreMock{
			GetDeviceFunc: func(ctx context.Context) (*models.DeviceIdentity, error) {
				return &models.DeviceIdentity{
					DeviceID:           "device-1",
					BusinessLocationID: "biz-1",
					StoreLocationID:    "store-1",
					AccessToken:        "test-token",
				}, nil
			},
		},
		client: &httpClient.ClientAPIMock{
			FetchSnapshotFunc: func(ctx context.Context, accessToken, businessLocationID, storeLocationID string) (*api.SnapshotResponse, error) {
				return testSnapshotResponse(), nil
			},
		},
	}
}

func (f *fixture) orchestrator(opts ...Option) *Orchestrator {
	return NewOrchestrator(f.snapshots, f.devices, f.client, testLogger(), opts...)
}

func TestOrchestrator_PullSnapshot_FirstPull(t *testing.T) {
	f := newFixture(nil)

	snap, err := f.orchestrator().PullSnapshot(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, "biz-1", snap.Scope.BusinessLocationID)
	assert.Equal(t, "store-1", snap.Scope.StoreLocationID)
	assert.Len(t, snap.Items, 2)
	assert.Equal(t, int64(42), snap.Version)
	assert.WithinDuration(t, time.Now().UTC(), snap.PulledAt, 5*time.Second)

	require.Len(t, f.snapshots.ReplaceSnapshotCalls(), 1)
	assert.Equal(t, snap, f.snapshots.ReplaceSnapshotCalls()[0].Snap)

	calls := f.client.FetchSnapshotCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "test-token", calls[0].AccessToken)
	assert.Equal(t, "biz-1", calls[0].BusinessLocationID)
	assert.Equal(t, "store-1", calls[0].StoreLocationID)
}

func TestOrchestrator_PullSnapshot_ReplacesWholesale(t *testing.T) {
	f := newFixture(&models.ReferenceSnapshot{
		Scope:   models.SnapshotScope{BusinessLocationID: "biz-1", StoreLocationID: "store-1"},
		Items:   []api.Item{{ID: "stale-item", Name: "Discontinued"}},
		Version: 41,
	})

	snap, err := f.orchestrator().PullSnapshot(context.Background(), false)
	require.NoError(t, err)

	// the old item set is gone entirely, not merged
	require.Len(t, snap.Items, 2)
	for _, item := range snap.Items {
		assert.NotEqual(t, "stale-item", item.ID)
	}
}

func TestOrchestrator_PullSnapshot_FailedFetchLeavesActiveUntouched(t *testing.T) {
	f := newFixture(&models.ReferenceSnapshot{
		Scope:   models.SnapshotScope{BusinessLocationID: "biz-1", StoreLocationID: "store-1"},
		Version: 41,
	})
	f.client.FetchSnapshotFunc = func(ctx context.Context, accessToken, businessLocationID, storeLocationID string) (*api.SnapshotResponse, error) {
		return nil, &httpClient.StatusError{Code: http.StatusBadGateway, Message: "upstream down"}
	}

	_, err := f.orchestrator(WithMaxFetchTries(2)).PullSnapshot(context.Background(), false)
	require.Error(t, err)

	// transient failures were retried, but nothing was written
	assert.Len(t, f.client.FetchSnapshotCalls(), 2)
	assert.Empty(t, f.snapshots.ReplaceSnapshotCalls())
}

func TestOrchestrator_PullSnapshot_TerminalFetchNotRetried(t *testing.T) {
	f := newFixture(nil)
	f.client.FetchSnapshotFunc = func(ctx context.Context, accessToken, businessLocationID, storeLocationID string) (*api.SnapshotResponse, error) {
		return nil, &httpClient.StatusError{Code: http.StatusUnauthorized, Message: "token expired"}
	}

	_, err := f.orchestrator().PullSnapshot(context.Background(), false)
	require.Error(t, err)

	assert.Len(t, f.client.FetchSnapshotCalls(), 1)
	assert.Empty(t, f.snapshots.ReplaceSnapshotCalls())
}

func TestOrchestrator_PullSnapshot_ScopeChangeRefusedWithoutForce(t *testing.T) {
	f := newFixture(&models.ReferenceSnapshot{
		Scope:   models.SnapshotScope{BusinessLocationID: "biz-1", StoreLocationID: "store-OLD"},
		Version: 7,
	})

	_, err := f.orchestrator().PullSnapshot(context.Background(), false)
	require.ErrorIs(t, err, storage.ErrSnapshotScopeChanged)

	// no network call, no write: the refusal is local
	assert.Empty(t, f.client.FetchSnapshotCalls())
	assert.Empty(t, f.snapshots.ReplaceSnapshotCalls())
}

func TestOrchestrator_PullSnapshot_ScopeChangeForced(t *testing.T) {
	f := newFixture(&models.ReferenceSnapshot{
		Scope:   models.SnapshotScope{BusinessLocationID: "biz-1", StoreLocationID: "store-OLD"},
		Version: 7,
	})

	snap, err := f.orchestrator().PullSnapshot(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, "store-1", snap.Scope.StoreLocationID)
	require.Len(t, f.snapshots.ReplaceSnapshotCalls(), 1)
}

func TestOrchestrator_PullSnapshot_WrongScopeFromServer(t *testing.T) {
	f := newFixture(nil)
	f.client.FetchSnapshotFunc = func(ctx context.Context, accessToken, businessLocationID, storeLocationID string) (*api.SnapshotResponse, error) {
		resp := testSnapshotResponse()
		resp.StoreLocationID = "store-SOMEWHERE-ELSE"
		return resp, nil
	}

	_, err := f.orchestrator().PullSnapshot(context.Background(), false)
	require.Error(t, err)
	assert.Empty(t, f.snapshots.ReplaceSnapshotCalls())
}

func TestOrchestrator_PullSnapshot_UnregisteredDevice(t *testing.T) {
	f := newFixture(nil)
	f.devices.GetDeviceFunc = func(ctx context.Context) (*models.DeviceIdentity, error) {
		return nil, storage.ErrDeviceNotRegistered
	}

	_, err := f.orchestrator().PullSnapshot(context.Background(), false)
	require.ErrorIs(t, err, storage.ErrDeviceNotRegistered)
	assert.Empty(t, f.client.FetchSnapshotCalls())
}
