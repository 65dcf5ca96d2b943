package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
	"github.com/RachelleMaina/stocka-sync/internal/models"
	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

var sellUsage = "Usage: possync sell [--sync]"

// runSell records a sale against the local snapshot and queues it for
// synchronization. It never touches the network unless --sync is given.
func (c *Cli) runSell(ctx context.Context, args []string) error {
	syncAfter := false
	for _, arg := range args {
		switch arg {
		case "--sync":
			syncAfter = true
		default:
			return fmt.Errorf("unknown argument: %s. %s", arg, sellUsage)
		}
	}

	device, err := c.devices.GetDevice(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrDeviceNotRegistered) {
			return fmt.Errorf("device not registered. Please run 'possync register' first")
		}
		return fmt.Errorf("failed to load device identity: %w", err)
	}

	snap, err := c.snapshots.ActiveSnapshot(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSnapshotNotFound) {
			return fmt.Errorf("no catalog on this device. Please run 'possync pull' first")
		}
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	c.io.Println("=== Record Sale ===")
	c.io.Printf("Catalog: %d items (pulled %s)\n", len(snap.Items), snap.PulledAt.Format(time.RFC3339))
	c.io.Println()

	cashier, err := c.io.ReadInput("Cashier name: ")
	if err != nil {
		return fmt.Errorf("failed to read cashier: %w", err)
	}

	var lines []api.SaleLine
	var total float64
	currency := ""

	for {
		line, lineCurrency, err := c.readSaleLine(snap)
		if err != nil {
			return err
		}
		lines = append(lines, *line)
		total += line.LineTotal
		if currency == "" {
			currency = lineCurrency
		}

		more, err := c.io.ReadInput("Add another line? [y/N]: ")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if more != "y" && more != "Y" {
			break
		}
	}

	payment, err := c.io.ReadInput("Payment method [cash]: ")
	if err != nil {
		return fmt.Errorf("failed to read payment method: %w", err)
	}
	if payment == "" {
		payment = "cash"
	}

	sale := api.SaleDocument{
		SoldAt:             time.Now().UTC(),
		BusinessLocationID: device.BusinessLocationID,
		StoreLocationID:    device.StoreLocationID,
		Cashier:            cashier,
		PaymentMethod:      payment,
		Currency:           currency,
		Lines:              lines,
		Total:              total,
	}

	payload, err := json.Marshal(sale)
	if err != nil {
		return fmt.Errorf("failed to encode sale: %w", err)
	}

	op, err := c.queue.Enqueue(ctx, models.OpKindRecordSale, payload)
	if err != nil {
		if errors.Is(err, storage.ErrQueueWrite) {
			// The sale could not be written locally. This is the one case
			// the cashier must know about immediately: the sale is NOT
			// recorded anywhere.
			c.io.Println()
			c.io.Println("⚠️  SALE NOT RECORDED: local storage write failed.")
			c.io.Println("   Check disk space and retry the sale.")
		}
		return fmt.Errorf("failed to queue sale: %w", err)
	}

	pending, _ := c.queue.CountPending(ctx)

	c.io.Println()
	c.io.Printf("✓ Sale recorded. Total: %.2f %s\n", total, currency)
	c.io.Printf("Operation ID: %s\n", op.ID)
	c.io.Printf("Pending sync: %d sale(s)\n", pending)

	if syncAfter {
		c.io.Println()
		return c.runSync(ctx)
	}

	c.io.Println("The sale will be pushed on the next sync.")
	return nil
}

// readSaleLine prompts for one receipt line, resolving price and unit from
// the snapshot.
func (c *Cli) readSaleLine(snap *models.ReferenceSnapshot) (*api.SaleLine, string, error) {
	input, err := c.io.ReadInput("Item (SKU or ID): ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to read item: %w", err)
	}

	item := findItem(snap, input)
	if item == nil {
		return nil, "", fmt.Errorf("item %q not found in the local catalog", input)
	}

	qtyInput, err := c.io.ReadInput(fmt.Sprintf("Quantity of %q: ", item.Name))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read quantity: %w", err)
	}
	qty, err := strconv.ParseFloat(qtyInput, 64)
	if err != nil || qty <= 0 {
		return nil, "", fmt.Errorf("invalid quantity %q", qtyInput)
	}

	unitPrice, currency := resolvePrice(snap, item)
	line := &api.SaleLine{
		ItemID:    item.ID,
		ItemName:  item.Name,
		UoMCode:   uomCode(snap, item.UoMID),
		Quantity:  qty,
		UnitPrice: unitPrice,
		LineTotal: unitPrice * qty,
	}

	c.io.Printf("  %s x %.2f @ %.2f = %.2f %s\n",
		item.Name, qty, unitPrice, line.LineTotal, currency)

	return line, currency, nil
}
