package storage

import (
	"context"

	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

// CatalogStorage defines read access to the reference data served to devices
type CatalogStorage interface {
	// GetSnapshot assembles the full reference data set for one scope inside
	// a single read transaction, so the result is internally consistent even
	// while the catalog is being edited.
	// Returns ErrScopeNotFound if the scope has no catalog.
	GetSnapshot(ctx context.Context, businessLocationID, storeLocationID string) (*api.SnapshotResponse, error)
}
