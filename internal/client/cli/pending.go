package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
	"github.com/RachelleMaina/stocka-sync/internal/models"
)

func (c *Cli) runPending(ctx context.Context) error {
	c.io.Println("=== Pending Sales ===")
	c.io.Println()

	ops, err := c.queue.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending operations: %w", err)
	}

	if len(ops) == 0 {
		c.io.Println("✓ Nothing waiting. All sales are synchronized.")
		return nil
	}

	c.io.Printf("%d sale(s) waiting to be pushed:\n", len(ops))
	c.io.Println()
	for i, op := range ops {
		c.printOperation(i+1, op)
	}

	c.io.Println("Run 'possync sync' to push them now.")
	return nil
}

func (c *Cli) runAbandoned(ctx context.Context) error {
	c.io.Println("=== Abandoned Sales ===")
	c.io.Println()

	ops, err := c.queue.ListAbandoned(ctx)
	if err != nil {
		return fmt.Errorf("failed to list abandoned operations: %w", err)
	}

	if len(ops) == 0 {
		c.io.Println("✓ No abandoned sales.")
		return nil
	}

	c.io.Printf("%d sale(s) gave up syncing and need review:\n", len(ops))
	c.io.Println()
	for i, op := range ops {
		c.printOperation(i+1, op)
	}

	c.io.Println("These sales were NOT applied on the backoffice.")
	c.io.Println("Re-enter them manually, then remove each with 'possync purge <id>'.")
	return nil
}

func (c *Cli) runPurge(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing operation id. Usage: possync purge <id>")
	}
	id := args[0]

	if err := c.queue.PurgeAbandoned(ctx, id); err != nil {
		if errors.Is(err, storage.ErrOperationNotFound) {
			return fmt.Errorf("no abandoned operation with id %s", id)
		}
		return fmt.Errorf("failed to purge operation: %w", err)
	}

	c.io.Printf("✓ Removed abandoned operation %s\n", id)
	return nil
}

func (c *Cli) printOperation(n int, op *models.PendingOperation) {
	c.io.Printf("%d. %s\n", n, op.ID)
	c.io.Printf("   Kind:     %s\n", op.Kind)
	c.io.Printf("   Created:  %s\n", op.CreatedAt.Format(time.RFC3339))
	if sale, err := op.Sale(); err == nil {
		c.io.Printf("   Total:    %.2f %s (%d line(s))\n", sale.Total, sale.Currency, len(sale.Lines))
	}
	if op.Attempts > 0 {
		c.io.Printf("   Attempts: %d\n", op.Attempts)
	}
	if op.LastError != "" {
		c.io.Printf("   Last error: %s\n", op.LastError)
	}
	if !op.NextAttemptAt.IsZero() && op.Status == models.OpStatusPending {
		c.io.Printf("   Next attempt after: %s\n", op.NextAttemptAt.Format(time.RFC3339))
	}
	c.io.Println()
}
