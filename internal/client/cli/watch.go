package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/RachelleMaina/stocka-sync/internal/client/trigger"
	"github.com/RachelleMaina/stocka-sync/internal/models"
)

// runWatch runs the full background sync loop in the foreground: trigger
// source, worker and a status consumer printing session transitions. This
// is the mode a till runs in all day.
func (c *Cli) runWatch(ctx context.Context) error {
	if _, err := c.devices.GetDevice(ctx); err != nil {
		return fmt.Errorf("device not ready: %w", err)
	}

	c.io.Println("=== Sync Watch ===")
	c.io.Println("Watching for sales to synchronize. Press Ctrl+C to stop.")
	c.io.Println()

	events, cancel := c.bus.Subscribe()
	defer cancel()

	c.triggers.Register(trigger.TagSyncSales)

	go c.triggers.Run(ctx)
	go c.worker.Run(ctx, c.triggers.Events())

	for {
		select {
		case <-ctx.Done():
			c.io.Println()
			c.io.Println("Stopped.")
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			c.printStatusEvent(event)
		}
	}
}

func (c *Cli) printStatusEvent(event models.StatusEvent) {
	stamp := event.At.Format(time.TimeOnly)
	switch event.Status {
	case models.SyncStatusStarted:
		c.io.Printf("[%s] sync started (session %s)\n", stamp, event.SessionID)
	case models.SyncStatusCompleted:
		c.io.Printf("[%s] sync completed: pushed %d, remaining %d\n",
			stamp, event.Drained, event.Remaining)
	case models.SyncStatusFailed:
		c.io.Printf("[%s] sync failed: backoffice unreachable, will retry\n", stamp)
	default:
		c.io.Printf("[%s] sync status: %s\n", stamp, event.Status)
	}
}
