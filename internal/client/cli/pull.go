package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
)

var pullUsage = "Usage: possync pull [--force]"

func (c *Cli) runPull(ctx context.Context, args []string) error {
	force := false
	for _, arg := range args {
		switch arg {
		case "--force":
			force = true
		default:
			return fmt.Errorf("unknown argument: %s. %s", arg, pullUsage)
		}
	}

	c.io.Println("=== Snapshot Pull ===")
	c.io.Println()
	c.io.Println("Fetching reference data from the backoffice...")

	snap, err := c.puller.PullSnapshot(ctx, force)
	if err != nil {
		if errors.Is(err, storage.ErrSnapshotScopeChanged) {
			c.io.Println()
			c.io.Println("This device was re-paired to a different store.")
			c.io.Println("The local catalog still belongs to the previous store and")
			c.io.Println("replacing it will discard that data.")
			c.io.Println()
			c.io.Println("Re-run with 'possync pull --force' to confirm.")
		}
		return err
	}

	c.io.Println()
	c.io.Println("✓ Snapshot replaced.")
	c.io.Printf("Items:   %d\n", len(snap.Items))
	c.io.Printf("Units:   %d\n", len(snap.UoMs))
	c.io.Printf("Prices:  %d\n", len(snap.Prices))
	c.io.Printf("Version: %d\n", snap.Version)

	return nil
}
