package storage

import "errors"

// Common client storage errors
var (
	// ErrOperationNotFound indicates that no queued operation exists for the id
	ErrOperationNotFound = errors.New("queued operation not found")

	// ErrSnapshotNotFound indicates that no reference snapshot has been pulled yet
	ErrSnapshotNotFound = errors.New("reference snapshot not found")

	// ErrSnapshotScopeChanged indicates that the stored snapshot belongs to a
	// different business/store location than the one requested
	ErrSnapshotScopeChanged = errors.New("reference snapshot scope changed")

	// ErrDeviceNotRegistered indicates that the device has not been paired yet
	ErrDeviceNotRegistered = errors.New("device not registered")

	// ErrSyncInFlight indicates that another sync session holds the lock record
	ErrSyncInFlight = errors.New("sync session already in flight")

	// ErrQueueWrite indicates that appending to the durable queue failed, most
	// likely from local storage exhaustion; the sale was NOT recorded
	ErrQueueWrite = errors.New("durable queue write failed")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
