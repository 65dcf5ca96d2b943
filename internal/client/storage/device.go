package storage

import (
	"context"

	"github.com/RachelleMaina/stocka-sync/internal/models"
)

//go:generate moq -out device_mock.go . DeviceStore

// DeviceStore persists the device pairing state.
type DeviceStore interface {
	// SaveDevice stores or replaces the device identity after registration.
	SaveDevice(ctx context.Context, device *models.DeviceIdentity) error

	// GetDevice returns the stored identity.
	// Returns ErrDeviceNotRegistered if the device has not been paired.
	GetDevice(ctx context.Context) (*models.DeviceIdentity, error)

	// DeleteDevice forgets the pairing, e.g. before re-pairing with a
	// different store location.
	DeleteDevice(ctx context.Context) error
}
