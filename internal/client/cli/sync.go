package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
	"github.com/RachelleMaina/stocka-sync/internal/models"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	pending, err := c.queue.CountPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending operations: %w", err)
	}
	if pending == 0 {
		c.io.Println("Nothing pending, verifying with backoffice...")
	} else {
		c.io.Printf("Pushing %d pending sale(s)...\n", pending)
	}

	// The session runs even on an empty queue so listeners on the status
	// bus still see a started/completed pair for every manual sync.
	session, err := c.worker.RunSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSyncInFlight) {
			return fmt.Errorf("another sync is already running on this device")
		}
		return fmt.Errorf("sync failed: %w", err)
	}

	c.io.Println()
	switch session.Outcome {
	case models.SyncStatusCompleted:
		c.io.Println("✓ Sync completed.")
	case models.SyncStatusFailed:
		c.io.Println("✗ Sync failed: backoffice unreachable. Sales stay queued.")
	default:
		c.io.Printf("Sync finished with outcome %q.\n", session.Outcome)
	}

	c.io.Printf("Pushed:    %d\n", session.Drained)
	c.io.Printf("Remaining: %d\n", session.Remaining)
	if session.Abandoned > 0 {
		c.io.Printf("Abandoned: %d  (see 'possync abandoned')\n", session.Abandoned)
	}

	if session.Outcome == models.SyncStatusFailed {
		return fmt.Errorf("sync failed, %d sale(s) still queued", session.Remaining)
	}

	return nil
}
