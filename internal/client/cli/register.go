package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
	"github.com/RachelleMaina/stocka-sync/internal/models"
	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Device Registration ===")
	c.io.Println()

	existing, err := c.devices.GetDevice(ctx)
	if err != nil && !errors.Is(err, storage.ErrDeviceNotRegistered) {
		return fmt.Errorf("failed to check registration state: %w", err)
	}
	if existing != nil {
		c.io.Printf("This device is already registered as %q (store %s).\n",
			existing.DeviceName, existing.StoreLocationID)
		answer, err := c.io.ReadInput("Re-register and replace the current pairing? [y/N]: ")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if answer != "y" && answer != "Y" {
			c.io.Println("Registration cancelled.")
			return nil
		}
	}

	deviceName, err := c.io.ReadInput("Device name (e.g. 'till-1'): ")
	if err != nil {
		return fmt.Errorf("failed to read device name: %w", err)
	}
	if deviceName == "" {
		return fmt.Errorf("device name cannot be empty")
	}

	// The pairing code is issued by the backoffice operator and is as good
	// as a password until it is consumed, so it is read without echo.
	pairingCode, err := c.io.ReadPassword("Pairing code: ")
	if err != nil {
		return fmt.Errorf("failed to read pairing code: %w", err)
	}
	if pairingCode == "" {
		return fmt.Errorf("pairing code cannot be empty")
	}

	c.io.Println()
	c.io.Println("Registering device...")

	resp, err := c.client.RegisterDevice(ctx, api.RegisterDeviceRequest{
		PairingCode: pairingCode,
		DeviceName:  deviceName,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	now := time.Now().UTC()
	device := &models.DeviceIdentity{
		RegisteredAt:       now,
		DeviceID:           resp.DeviceID,
		DeviceName:         deviceName,
		BusinessLocationID: resp.BusinessLocationID,
		StoreLocationID:    resp.StoreLocationID,
		AccessToken:        resp.AccessToken,
		ExpiresAt:          now.Unix() + resp.ExpiresIn,
	}
	if err := c.devices.SaveDevice(ctx, device); err != nil {
		return fmt.Errorf("failed to save device identity: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Device registered!")
	c.io.Printf("Device ID: %s\n", device.DeviceID)
	c.io.Printf("Business:  %s\n", device.BusinessLocationID)
	c.io.Printf("Store:     %s\n", device.StoreLocationID)
	c.io.Println()
	c.io.Println("Run 'possync pull' to fetch the catalog before selling.")

	return nil
}
