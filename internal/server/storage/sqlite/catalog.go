package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RachelleMaina/stocka-sync/internal/server/storage"
	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

// GetSnapshot assembles the full reference data set for one scope inside a
// single read transaction. Catalog edits in flight either land entirely
// before or entirely after the snapshot; the response is never torn.
func (s *Storage) GetSnapshot(ctx context.Context, businessLocationID, storeLocationID string) (*api.SnapshotResponse, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	resp := &api.SnapshotResponse{
		BusinessLocationID: businessLocationID,
		StoreLocationID:    storeLocationID,
	}

	err = tx.QueryRowContext(ctx,
		`SELECT version FROM catalog_versions WHERE business_location_id = ? AND store_location_id = ?`,
		businessLocationID, storeLocationID,
	).Scan(&resp.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrScopeNotFound
		}
		return nil, fmt.Errorf("failed to get catalog version: %w", err)
	}

	if resp.Items, err = snapshotItems(ctx, tx, businessLocationID); err != nil {
		return nil, err
	}
	if resp.UoMs, err = snapshotUoMs(ctx, tx); err != nil {
		return nil, err
	}
	if resp.Prices, err = snapshotPrices(ctx, tx, storeLocationID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return resp, nil
}

func snapshotItems(ctx context.Context, tx *sql.Tx, businessLocationID string) ([]api.Item, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, name, sku, uom_id, selling_price FROM items WHERE business_location_id = ? ORDER BY name`,
		businessLocationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []api.Item
	for rows.Next() {
		var item api.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.SKU, &item.UoMID, &item.SellingPrice); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func snapshotUoMs(ctx context.Context, tx *sql.Tx) ([]api.UoM, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, name, code FROM uoms ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to query uoms: %w", err)
	}
	defer rows.Close()

	var uoms []api.UoM
	for rows.Next() {
		var uom api.UoM
		if err := rows.Scan(&uom.ID, &uom.Name, &uom.Code); err != nil {
			return nil, fmt.Errorf("failed to scan uom: %w", err)
		}
		uoms = append(uoms, uom)
	}
	return uoms, rows.Err()
}

func snapshotPrices(ctx context.Context, tx *sql.Tx, storeLocationID string) ([]api.Price, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT item_id, store_location_id, currency, amount FROM prices WHERE store_location_id = ?`,
		storeLocationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer rows.Close()

	var prices []api.Price
	for rows.Next() {
		var price api.Price
		if err := rows.Scan(&price.ItemID, &price.StoreLocationID, &price.Currency, &price.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		prices = append(prices, price)
	}
	return prices, rows.Err()
}

// SeedDemoCatalog loads a small demo scope so a fresh install can register
// a device and sell immediately. Idempotent.
func (s *Storage) SeedDemoCatalog(ctx context.Context, businessLocationID, storeLocationID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO catalog_versions (business_location_id, store_location_id, version) VALUES (?, ?, 1)`,
		businessLocationID, storeLocationID,
	); err != nil {
		return fmt.Errorf("failed to seed catalog version: %w", err)
	}

	uoms := []api.UoM{
		{ID: "uom-pcs", Name: "piece", Code: "pcs"},
		{ID: "uom-kg", Name: "kilogram", Code: "kg"},
	}
	for _, uom := range uoms {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO uoms (id, name, code) VALUES (?, ?, ?)`,
			uom.ID, uom.Name, uom.Code,
		); err != nil {
			return fmt.Errorf("failed to seed uom: %w", err)
		}
	}

	items := []api.Item{
		{ID: "item-maize-2kg", Name: "Maize flour 2kg", SKU: "MF2", UoMID: "uom-pcs", SellingPrice: 180},
		{ID: "item-oil-1l", Name: "Cooking oil 1l", SKU: "CO1", UoMID: "uom-pcs", SellingPrice: 350},
		{ID: "item-sugar", Name: "Sugar", SKU: "SUG", UoMID: "uom-kg", SellingPrice: 150},
	}
	for _, item := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO items (id, business_location_id, name, sku, uom_id, selling_price) VALUES (?, ?, ?, ?, ?, ?)`,
			item.ID, businessLocationID, item.Name, item.SKU, item.UoMID, item.SellingPrice,
		); err != nil {
			return fmt.Errorf("failed to seed item: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO prices (item_id, store_location_id, currency, amount) VALUES (?, ?, ?, ?)`,
		"item-maize-2kg", storeLocationID, "KES", 175.0,
	); err != nil {
		return fmt.Errorf("failed to seed price: %w", err)
	}

	return tx.Commit()
}
