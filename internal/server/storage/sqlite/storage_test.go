package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/RachelleMaina/stocka-sync/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestDevice(t *testing.T, ctx context.Context, s *Storage) *models.Device {
	t.Helper()

	device := &models.Device{
		RegisteredAt:       time.Now().UTC(),
		ID:                 uuid.New().String(),
		Name:               "till-1",
		BusinessLocationID: "biz-1",
		StoreLocationID:    "store-1",
	}
	require.NoError(t, s.CreateDevice(ctx, device))
	return device
}
