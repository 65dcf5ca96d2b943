package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Device Status ===")
	c.io.Println()

	device, err := c.devices.GetDevice(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrDeviceNotRegistered) {
			c.io.Println("Status: Not registered")
			c.io.Println()
			c.io.Println("Run 'possync register' to pair this device.")
			return nil
		}
		return fmt.Errorf("failed to load device identity: %w", err)
	}

	c.io.Println("Status: Registered")
	c.io.Printf("Device:   %s (%s)\n", device.DeviceName, device.DeviceID)
	c.io.Printf("Business: %s\n", device.BusinessLocationID)
	c.io.Printf("Store:    %s\n", device.StoreLocationID)

	expiresAt := time.Unix(device.ExpiresAt, 0)
	if device.TokenExpired(time.Now()) {
		c.io.Println("⚠️  Access token has expired. Please register again.")
	} else {
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	}

	c.io.Println()
	snap, err := c.snapshots.ActiveSnapshot(ctx)
	switch {
	case errors.Is(err, storage.ErrSnapshotNotFound):
		c.io.Println("Catalog: none. Run 'possync pull'.")
	case err != nil:
		return fmt.Errorf("failed to load snapshot: %w", err)
	default:
		c.io.Printf("Catalog: %d items, version %d, pulled %s\n",
			len(snap.Items), snap.Version, snap.PulledAt.Format(time.RFC3339))
		if snap.Scope.StoreLocationID != device.StoreLocationID {
			c.io.Printf("⚠️  Catalog belongs to store %s, device is paired to %s.\n",
				snap.Scope.StoreLocationID, device.StoreLocationID)
			c.io.Println("   Run 'possync pull --force' to refresh.")
		}
	}

	c.io.Println()
	pending, err := c.queue.CountPending(ctx)
	if err != nil {
		c.io.Printf("Warning: failed to count pending sales: %v\n", err)
	} else if pending > 0 {
		c.io.Printf("⚠️  Pending sync: %d sale(s) waiting\n", pending)
		c.io.Println("Run 'possync sync' to push them.")
	} else {
		c.io.Println("✓ All sales synchronized")
	}

	if abandoned, err := c.queue.ListAbandoned(ctx); err == nil && len(abandoned) > 0 {
		c.io.Printf("⚠️  %d abandoned sale(s) need review ('possync abandoned')\n", len(abandoned))
	}

	if session := c.worker.InFlightSession(); session != nil {
		c.io.Println()
		c.io.Printf("Sync session %s is running since %s\n",
			session.ID, session.StartedAt.Format(time.RFC3339))
	}

	return nil
}
