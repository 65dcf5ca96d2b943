package storage

import (
	"context"

	"github.com/RachelleMaina/stocka-sync/internal/models"
)

//go:generate moq -out snapshot_mock.go . SnapshotStore

// SnapshotStore holds the active reference snapshot. Replacement is atomic:
// a reader never observes a half-written snapshot, and a failed replacement
// leaves the previous snapshot untouched.
type SnapshotStore interface {
	// ActiveSnapshot returns the current snapshot.
	// Returns ErrSnapshotNotFound before the first successful pull.
	ActiveSnapshot(ctx context.Context) (*models.ReferenceSnapshot, error)

	// ReplaceSnapshot swaps in a fully fetched snapshot in one atomic step.
	ReplaceSnapshot(ctx context.Context, snap *models.ReferenceSnapshot) error
}
