package storage

import (
	"context"
	"time"

	"github.com/RachelleMaina/stocka-sync/internal/models"
)

// DeviceStorage defines persistence for registered POS devices
type DeviceStorage interface {
	// CreateDevice registers a new device
	CreateDevice(ctx context.Context, device *models.Device) error

	// GetDevice retrieves a device by ID
	// Returns ErrDeviceNotFound if the device doesn't exist
	GetDevice(ctx context.Context, deviceID string) (*models.Device, error)
}

// PairingStorage defines persistence for operator-issued pairing codes.
// Codes are stored hashed; matching a presented code against the stored
// hashes is the caller's job.
type PairingStorage interface {
	// CreatePairingCode stores a freshly issued code
	CreatePairingCode(ctx context.Context, code *models.PairingCode) error

	// ListUsablePairingCodes returns codes that are neither consumed nor
	// expired at the given instant
	ListUsablePairingCodes(ctx context.Context, now time.Time) ([]*models.PairingCode, error)

	// MarkPairingCodeUsed consumes the code for the given device.
	// Returns ErrPairingCodeInvalid if the code was consumed concurrently.
	MarkPairingCodeUsed(ctx context.Context, codeID, deviceID string) error
}
