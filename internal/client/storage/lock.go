package storage

import (
	"context"
	"time"
)

//go:generate moq -out lock_mock.go . SessionLocker

// SyncLock is the durable mutual-exclusion record for the sync worker.
// Keeping it in the same store as the queue means every process holding a
// handle to the device's database observes the same lock, not an in-memory
// flag scoped to one process.
type SyncLock struct {
	AcquiredAt time.Time `json:"acquired_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	Owner      string    `json:"owner"` // session id
}

// SessionLocker serializes sync sessions per device.
type SessionLocker interface {
	// AcquireSyncLock writes the lock record if no unexpired lock exists.
	// Returns ErrSyncInFlight when another session holds it. The TTL guards
	// against a crashed holder wedging the device forever.
	AcquireSyncLock(ctx context.Context, owner string, ttl time.Duration) error

	// RenewSyncLock extends the expiry of the lock held by owner. A live
	// session renews between submissions so a long drain never expires out
	// from under it. Returns ErrSyncInFlight if another session has taken
	// the lock over in the meantime.
	RenewSyncLock(ctx context.Context, owner string, ttl time.Duration) error

	// ReleaseSyncLock removes the lock record if owned by owner.
	ReleaseSyncLock(ctx context.Context, owner string) error
}
