package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/RachelleMaina/stocka-sync/internal/models"
	"github.com/RachelleMaina/stocka-sync/internal/server/storage"
)

// CreateSale records a sale. The unique index on idempotency_key turns a
// replayed submission into ErrDuplicateSale instead of a second row.
func (s *Storage) CreateSale(ctx context.Context, sale *models.Sale) error {
	query := `
		INSERT INTO sales (id, idempotency_key, device_id, business_location_id, store_location_id,
		                   currency, total, document, sold_at, applied_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		sale.ID,
		sale.IdempotencyKey,
		sale.DeviceID,
		sale.BusinessLocationID,
		sale.StoreLocationID,
		sale.Currency,
		sale.Total,
		string(sale.Document),
		sale.SoldAt,
		sale.AppliedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: sales.idempotency_key") {
			return storage.ErrDuplicateSale
		}
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	return nil
}

// GetSaleByIdempotencyKey retrieves the sale applied under the key
func (s *Storage) GetSaleByIdempotencyKey(ctx context.Context, key string) (*models.Sale, error) {
	query := `
		SELECT id, idempotency_key, device_id, business_location_id, store_location_id,
		       currency, total, document, sold_at, applied_at
		FROM sales
		WHERE idempotency_key = ?
	`

	sale := &models.Sale{}
	var document string

	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&sale.ID,
		&sale.IdempotencyKey,
		&sale.DeviceID,
		&sale.BusinessLocationID,
		&sale.StoreLocationID,
		&sale.Currency,
		&sale.Total,
		&document,
		&sale.SoldAt,
		&sale.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}

	sale.Document = []byte(document)
	return sale, nil
}
