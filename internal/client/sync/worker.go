// Package sync implements the background worker that drains the durable
// operation queue against the backoffice. It is the only writer of
// SyncSession state and enforces at most one session in flight per device.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/RachelleMaina/stocka-sync/internal/client/api"
	"github.com/RachelleMaina/stocka-sync/internal/client/status"
	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
	"github.com/RachelleMaina/stocka-sync/internal/client/trigger"
	"github.com/RachelleMaina/stocka-sync/internal/models"
	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

// DefaultLockTTL bounds how long a crashed session can wedge the device
// before its durable lock record is stolen.
const DefaultLockTTL = 2 * time.Minute

// Worker drains the pending operation queue and reports progress on the
// status bus.
type Worker struct {
	queue   storage.OperationQueue
	locker  storage.SessionLocker
	devices storage.DeviceStore
	client  httpClient.ClientAPI
	bus     *status.Bus
	logger  *slog.Logger
	policy  RetryPolicy
	lockTTL time.Duration

	mu       sync.Mutex
	inflight *models.SyncSession
}

// Option configures a Worker.
type Option func(*Worker)

// WithLockTTL overrides the durable lock TTL. The TTL must exceed the
// longest single submission, including the HTTP client timeout.
func WithLockTTL(ttl time.Duration) Option {
	return func(w *Worker) {
		if ttl > 0 {
			w.lockTTL = ttl
		}
	}
}

// NewWorker creates a sync worker
func NewWorker(
	queue storage.OperationQueue,
	locker storage.SessionLocker,
	devices storage.DeviceStore,
	client httpClient.ClientAPI,
	bus *status.Bus,
	logger *slog.Logger,
	opts ...Option,
) *Worker {
	w := &Worker{
		queue:   queue,
		locker:  locker,
		devices: devices,
		client:  client,
		bus:     bus,
		logger:  logger,
		policy:  DefaultRetryPolicy(),
		lockTTL: DefaultLockTTL,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// InFlightSession returns a snapshot of the running session, if any.
func (w *Worker) InFlightSession() *models.SyncSession {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inflight != nil && w.inflight.InFlight() {
		snapshot := *w.inflight
		return &snapshot
	}
	return nil
}

// RunSession executes one drain of the queue. If a session is already in
// flight the in-flight session is returned immediately instead of starting
// a second one: concurrent triggers coalesce rather than race the queue.
func (w *Worker) RunSession(ctx context.Context) (*models.SyncSession, error) {
	w.mu.Lock()
	if w.inflight != nil && w.inflight.InFlight() {
		// Coalesced callers get a copy: the drain goroutine keeps mutating
		// the live session's counters.
		snapshot := *w.inflight
		w.mu.Unlock()
		w.logger.Debug("sync trigger coalesced into running session", "session_id", snapshot.ID)
		return &snapshot, nil
	}

	session := &models.SyncSession{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Outcome:   models.SyncStatusStarted,
	}

	// The durable lock covers sessions started by other processes holding
	// the same device database; the in-memory check above covers this one.
	if err := w.locker.AcquireSyncLock(ctx, session.ID, w.lockTTL); err != nil {
		w.mu.Unlock()
		if errors.Is(err, storage.ErrSyncInFlight) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to acquire sync lock: %w", err)
	}

	w.inflight = session
	w.mu.Unlock()

	defer func() {
		if err := w.locker.ReleaseSyncLock(context.WithoutCancel(ctx), session.ID); err != nil {
			w.logger.Warn("failed to release sync lock", "error", err)
		}
	}()

	w.publish(session, models.SyncStatusStarted)
	w.logger.Info("sync session started", "session_id", session.ID)

	outcome := w.drain(ctx, session)

	w.mu.Lock()
	session.FinishedAt = time.Now().UTC()
	session.Outcome = outcome
	w.mu.Unlock()
	w.publish(session, outcome)

	w.logger.Info("sync session finished",
		"session_id", session.ID,
		"outcome", outcome,
		"drained", session.Drained,
		"remaining", session.Remaining,
		"abandoned", session.Abandoned)

	return session, nil
}

// drain submits pending operations in FIFO order. One bad operation never
// blocks the rest of the queue; a partially successful drain still counts
// as completed because no operation was lost.
func (w *Worker) drain(ctx context.Context, session *models.SyncSession) models.SyncStatus {
	// Preflight: a drain that cannot even reach the server is reported as
	// failed, meaning "nothing changed, try again later".
	if err := w.client.Health(ctx); err != nil {
		w.logger.Warn("sync preflight failed, backoffice unreachable", "error", err)
		return models.SyncStatusFailed
	}

	device, err := w.devices.GetDevice(ctx)
	if err != nil {
		w.logger.Error("sync aborted, no device identity", "error", err)
		return models.SyncStatusFailed
	}

	ops, err := w.queue.ListPending(ctx)
	if err != nil {
		w.logger.Error("failed to list pending operations", "error", err)
		return models.SyncStatusFailed
	}

	now := time.Now().UTC()
	for _, op := range ops {
		// The only safe cancellation point is between submissions: once a
		// call is dispatched the server may already have applied it.
		if ctx.Err() != nil {
			w.logger.Warn("sync session cancelled mid-drain", "session_id", session.ID)
			break
		}

		if op.NextAttemptAt.After(now) {
			continue // backing off, not eligible this session
		}

		// The lock is written with a fixed TTL, so a drain of many slow
		// submissions would otherwise outlive it and let another process
		// steal the lock from a live session. Renewing here bounds the
		// exposure to a single submission, which the TTL covers.
		if err := w.locker.RenewSyncLock(ctx, session.ID, w.lockTTL); err != nil {
			if errors.Is(err, storage.ErrSyncInFlight) {
				w.logger.Error("sync lock taken over mid-drain, stopping", "session_id", session.ID)
				return models.SyncStatusFailed
			}
			w.logger.Warn("failed to renew sync lock", "session_id", session.ID, "error", err)
		}

		w.submit(ctx, session, device, op)
	}

	if remaining, err := w.queue.CountPending(ctx); err == nil {
		w.mu.Lock()
		session.Remaining = remaining
		w.mu.Unlock()
	}

	return models.SyncStatusCompleted
}

// submit pushes one operation to the server and settles its queue state.
func (w *Worker) submit(ctx context.Context, session *models.SyncSession, device *models.DeviceIdentity, op *models.PendingOperation) {
	if op.Kind != models.OpKindRecordSale {
		w.logger.Error("abandoning operation of unknown kind",
			"operation_id", op.ID,
			"kind", op.Kind)
		w.abandon(ctx, session, op, fmt.Sprintf("unknown operation kind %q", op.Kind))
		return
	}

	sale, err := op.Sale()
	if err != nil {
		// A payload that cannot be decoded will never succeed.
		w.abandon(ctx, session, op, fmt.Sprintf("malformed payload: %v", err))
		return
	}

	resp, err := w.client.SubmitSale(ctx, device.AccessToken, op.ID, api.SubmitSaleRequest{Sale: *sale})
	switch {
	case err == nil:
		if resp.AlreadyApplied {
			w.logger.Info("sale already applied on server, confirming locally",
				"operation_id", op.ID,
				"sale_id", resp.SaleID)
		}
		w.confirm(ctx, session, op)

	case httpClient.IsIdempotencyConflict(err):
		// The server saw this key before: a retry after a lost response.
		// Exactly one server-side effect exists, so this is a success.
		w.logger.Info("idempotency conflict resolved as already applied", "operation_id", op.ID)
		w.confirm(ctx, session, op)

	case httpClient.IsRetryable(err):
		next := time.Now().UTC().Add(w.policy.Delay(op.Attempts + 1))
		w.logger.Warn("sale submission failed, will retry",
			"operation_id", op.ID,
			"attempts", op.Attempts+1,
			"next_attempt_at", next,
			"error", err)
		if err := w.queue.MarkFailed(ctx, op.ID, err.Error(), next, false); err != nil {
			w.logger.Error("failed to record operation failure", "operation_id", op.ID, "error", err)
		}

	default:
		// Validation rejection: retrying cannot help, the operator must look.
		w.logger.Error("sale rejected by server, abandoning",
			"operation_id", op.ID,
			"error", err)
		w.abandon(ctx, session, op, err.Error())
	}
}

func (w *Worker) confirm(ctx context.Context, session *models.SyncSession, op *models.PendingOperation) {
	if err := w.queue.MarkConfirmed(ctx, op.ID); err != nil {
		w.logger.Error("failed to confirm operation", "operation_id", op.ID, "error", err)
		return
	}
	w.mu.Lock()
	session.Drained++
	w.mu.Unlock()
}

func (w *Worker) abandon(ctx context.Context, session *models.SyncSession, op *models.PendingOperation, cause string) {
	if err := w.queue.MarkFailed(ctx, op.ID, cause, time.Time{}, true); err != nil {
		w.logger.Error("failed to abandon operation", "operation_id", op.ID, "error", err)
		return
	}
	w.mu.Lock()
	session.Abandoned++
	w.mu.Unlock()
}

func (w *Worker) publish(session *models.SyncSession, s models.SyncStatus) {
	w.mu.Lock()
	event := models.StatusEvent{
		At:        time.Now().UTC(),
		SessionID: session.ID,
		Status:    s,
		Drained:   session.Drained,
		Remaining: session.Remaining,
	}
	w.mu.Unlock()
	w.bus.Publish(event)
}

// Run consumes trigger events until the context is cancelled. Each event
// attempts a session; coalescing inside RunSession keeps concurrent
// triggers from racing the queue.
func (w *Worker) Run(ctx context.Context, triggers <-chan trigger.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-triggers:
			if !ok {
				return
			}
			w.logger.Debug("sync trigger received", "tag", event.Tag, "origin", event.Origin)
			if _, err := w.RunSession(ctx); err != nil && !errors.Is(err, storage.ErrSyncInFlight) {
				w.logger.Error("sync session error", "error", err)
			}
		}
	}
}
