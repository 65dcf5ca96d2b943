package handlers

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/RachelleMaina/stocka-sync/internal/models"
	"github.com/RachelleMaina/stocka-sync/internal/server/jwt"
	"github.com/RachelleMaina/stocka-sync/internal/server/pairing"
	"github.com/RachelleMaina/stocka-sync/internal/server/storage/sqlite"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupStorage creates an in-memory backoffice database
func setupStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func testJWTService() *jwt.Service {
	return jwt.NewService("test-secret", time.Hour)
}

// issuePairingCode stores a fresh code for the scope and returns its
// plaintext form.
func issuePairingCode(t *testing.T, store *sqlite.Storage, bizID, storeID string, ttl time.Duration) string {
	t.Helper()

	code, err := pairing.GenerateCode()
	require.NoError(t, err)

	hash, err := pairing.HashCode(code)
	require.NoError(t, err)

	err = store.CreatePairingCode(context.Background(), &models.PairingCode{
		ID:                 uuid.New().String(),
		CodeHash:           hash,
		BusinessLocationID: bizID,
		StoreLocationID:    storeID,
		CreatedAt:          time.Now(),
		ExpiresAt:          time.Now().Add(ttl),
	})
	require.NoError(t, err)

	return code
}

// registerTestDevice persists a device and returns it
func registerTestDevice(t *testing.T, store *sqlite.Storage, bizID, storeID string) *models.Device {
	t.Helper()

	device := &models.Device{
		ID:                 uuid.New().String(),
		Name:               "Till 1",
		BusinessLocationID: bizID,
		StoreLocationID:    storeID,
		RegisteredAt:       time.Now(),
	}
	require.NoError(t, store.CreateDevice(context.Background(), device))

	return device
}

// withClaims attaches device claims to a request context, the way the auth
// middleware would.
func withClaims(ctx context.Context, deviceID, bizID, storeID string) context.Context {
	return context.WithValue(ctx, DeviceClaimsKey, &jwt.DeviceClaims{
		DeviceID:           deviceID,
		BusinessLocationID: bizID,
		StoreLocationID:    storeID,
	})
}
