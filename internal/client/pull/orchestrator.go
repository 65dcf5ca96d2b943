// Package pull refreshes the local reference snapshot from the backoffice.
// A pull fetches the full catalog for the device's scope in one response and
// swaps it in atomically; a failed pull leaves the previous snapshot intact.
package pull

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	httpClient "github.com/RachelleMaina/stocka-sync/internal/client/api"
	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
	"github.com/RachelleMaina/stocka-sync/internal/models"
	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

// DefaultMaxFetchTries bounds transient retries within a single pull.
// Beyond that the pull fails and the operator retries manually.
const DefaultMaxFetchTries = 3

// Orchestrator coordinates snapshot refreshes.
type Orchestrator struct {
	snapshots storage.SnapshotStore
	devices   storage.DeviceStore
	client    httpClient.ClientAPI
	logger    *slog.Logger
	maxTries  uint
}

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithMaxFetchTries overrides the transient-retry bound of a single pull.
func WithMaxFetchTries(n uint) Option {
	return func(o *Orchestrator) {
		o.maxTries = n
	}
}

// NewOrchestrator creates a pull orchestrator
func NewOrchestrator(
	snapshots storage.SnapshotStore,
	devices storage.DeviceStore,
	client httpClient.ClientAPI,
	logger *slog.Logger,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		snapshots: snapshots,
		devices:   devices,
		client:    client,
		logger:    logger,
		maxTries:  DefaultMaxFetchTries,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// PullSnapshot fetches the reference data for the device's registered scope
// and replaces the active snapshot in one atomic swap.
//
// When the active snapshot was pulled for a different scope (the device was
// re-paired to another store) the pull refuses with ErrSnapshotScopeChanged
// unless force is set: replacing another store's catalog is destructive and
// must be an explicit operator decision.
func (o *Orchestrator) PullSnapshot(ctx context.Context, force bool) (*models.ReferenceSnapshot, error) {
	device, err := o.devices.GetDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load device identity: %w", err)
	}

	scope := models.SnapshotScope{
		BusinessLocationID: device.BusinessLocationID,
		StoreLocationID:    device.StoreLocationID,
	}

	active, err := o.snapshots.ActiveSnapshot(ctx)
	switch {
	case errors.Is(err, storage.ErrSnapshotNotFound):
		// first pull on this device
	case err != nil:
		return nil, fmt.Errorf("failed to read active snapshot: %w", err)
	case active.Scope != scope && !force:
		o.logger.Warn("refusing snapshot pull across scope change",
			"active_business_location", active.Scope.BusinessLocationID,
			"active_store_location", active.Scope.StoreLocationID,
			"device_business_location", scope.BusinessLocationID,
			"device_store_location", scope.StoreLocationID)
		return nil, fmt.Errorf("%w: active snapshot belongs to store %q, device is paired to %q",
			storage.ErrSnapshotScopeChanged, active.Scope.StoreLocationID, scope.StoreLocationID)
	}

	resp, err := o.fetch(ctx, device)
	if err != nil {
		return nil, fmt.Errorf("snapshot fetch failed: %w", err)
	}

	if resp.BusinessLocationID != scope.BusinessLocationID || resp.StoreLocationID != scope.StoreLocationID {
		return nil, fmt.Errorf("server returned snapshot for wrong scope: got store %q, want %q",
			resp.StoreLocationID, scope.StoreLocationID)
	}

	snap := &models.ReferenceSnapshot{
		PulledAt: time.Now().UTC(),
		Scope:    scope,
		Items:    resp.Items,
		UoMs:     resp.UoMs,
		Prices:   resp.Prices,
		Version:  resp.Version,
	}

	if err := o.snapshots.ReplaceSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	o.logger.Info("reference snapshot replaced",
		"items", len(snap.Items),
		"uoms", len(snap.UoMs),
		"prices", len(snap.Prices),
		"version", snap.Version)

	return snap, nil
}

// fetch retrieves the snapshot, retrying transient failures within the pull.
func (o *Orchestrator) fetch(ctx context.Context, device *models.DeviceIdentity) (*api.SnapshotResponse, error) {
	operation := func() (*api.SnapshotResponse, error) {
		resp, err := o.client.FetchSnapshot(ctx, device.AccessToken, device.BusinessLocationID, device.StoreLocationID)
		if err != nil {
			if !httpClient.IsRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			o.logger.Warn("transient snapshot fetch failure, retrying", "error", err)
			return nil, err
		}
		return resp, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(o.maxTries))
}
