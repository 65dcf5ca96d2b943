package storage

import (
	"context"

	"github.com/RachelleMaina/stocka-sync/internal/models"
)

// SaleStorage defines persistence for applied sales
type SaleStorage interface {
	// CreateSale records a sale. The idempotency key is unique: a second
	// insert with the same key returns ErrDuplicateSale and leaves the
	// original row untouched.
	CreateSale(ctx context.Context, sale *models.Sale) error

	// GetSaleByIdempotencyKey retrieves the sale applied under the key.
	// Returns ErrSaleNotFound if no such sale exists.
	GetSaleByIdempotencyKey(ctx context.Context, key string) (*models.Sale, error)
}
