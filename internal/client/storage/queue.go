package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/RachelleMaina/stocka-sync/internal/models"
)

//go:generate moq -out queue_mock.go . OperationQueue

// OperationQueue defines the durable FIFO queue of not-yet-confirmed writes.
// Implementations must survive process restarts: an enqueued operation may
// only disappear via MarkConfirmed or terminal abandonment.
type OperationQueue interface {
	// Enqueue appends a new pending operation with a fresh idempotency key.
	// Never touches the network. Returns ErrQueueWrite (wrapped) when the
	// local store cannot accept the record, so the caller can warn the
	// operator instead of silently losing the sale.
	Enqueue(ctx context.Context, kind models.OperationKind, payload json.RawMessage) (*models.PendingOperation, error)

	// ListPending returns all pending operations in creation (FIFO) order.
	ListPending(ctx context.Context) ([]*models.PendingOperation, error)

	// CountPending returns the number of pending operations. Cheap; used by
	// the UI for the "N unsynced sales" indicator.
	CountPending(ctx context.Context) (int, error)

	// MarkConfirmed removes the operation after the server acknowledged it
	// durably. Atomic with respect to concurrent Enqueue calls.
	// Returns ErrOperationNotFound if the id is not queued.
	MarkConfirmed(ctx context.Context, id string) error

	// MarkFailed increments the attempt count, records the error and the
	// earliest time of the next attempt. When terminal is true or the attempt
	// ceiling is crossed the operation moves to the abandoned set, retained
	// for operator review rather than deleted.
	MarkFailed(ctx context.Context, id string, cause string, nextAttemptAt time.Time, terminal bool) error

	// ListAbandoned returns operations that hit a terminal failure or the
	// retry ceiling, newest first is not guaranteed; creation order is.
	ListAbandoned(ctx context.Context) ([]*models.PendingOperation, error)

	// PurgeAbandoned removes one reviewed abandoned operation.
	PurgeAbandoned(ctx context.Context, id string) error
}
