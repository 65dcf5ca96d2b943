package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RachelleMaina/stocka-sync/internal/server/storage"
)

func TestCatalogStorage_GetSnapshot(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.SeedDemoCatalog(ctx, "biz-1", "store-1"))

	snap, err := s.GetSnapshot(ctx, "biz-1", "store-1")
	require.NoError(t, err)

	assert.Equal(t, "biz-1", snap.BusinessLocationID)
	assert.Equal(t, "store-1", snap.StoreLocationID)
	assert.Equal(t, int64(1), snap.Version)
	assert.Len(t, snap.Items, 3)
	assert.Len(t, snap.UoMs, 2)
	require.Len(t, snap.Prices, 1)
	assert.Equal(t, "item-maize-2kg", snap.Prices[0].ItemID)
	assert.InDelta(t, 175.0, snap.Prices[0].Amount, 0.001)
}

func TestCatalogStorage_UnknownScope(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetSnapshot(ctx, "biz-1", "store-nowhere")
	assert.ErrorIs(t, err, storage.ErrScopeNotFound)
}

func TestCatalogStorage_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.SeedDemoCatalog(ctx, "biz-1", "store-1"))
	require.NoError(t, s.SeedDemoCatalog(ctx, "biz-1", "store-1"))

	snap, err := s.GetSnapshot(ctx, "biz-1", "store-1")
	require.NoError(t, err)
	assert.Len(t, snap.Items, 3)
}

func TestCatalogStorage_PricesScopedToStore(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.SeedDemoCatalog(ctx, "biz-1", "store-1"))
	require.NoError(t, s.SeedDemoCatalog(ctx, "biz-1", "store-2"))

	snap, err := s.GetSnapshot(ctx, "biz-1", "store-2")
	require.NoError(t, err)

	// store-2 sees only its own overrides
	for _, p := range snap.Prices {
		assert.Equal(t, "store-2", p.StoreLocationID)
	}
}
