package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/RachelleMaina/stocka-sync/internal/server/storage"
)

// SnapshotHandler serves reference data snapshots to devices
type SnapshotHandler struct {
	logger  *slog.Logger
	catalog storage.CatalogStorage
}

// NewSnapshotHandler creates a new handler for snapshot downloads
func NewSnapshotHandler(logger *slog.Logger, catalog storage.CatalogStorage) *SnapshotHandler {
	return &SnapshotHandler{
		logger:  logger,
		catalog: catalog,
	}
}

// Get handles GET /api/v1/snapshot?business_location_id=...&store_location_id=...
// Returns the full reference data set for one scope. Omitted query parameters
// default to the scope of the device token.
func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := GetDeviceClaims(ctx)
	if !ok {
		h.logger.Error("device claims not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	businessLocationID := r.URL.Query().Get("business_location_id")
	if businessLocationID == "" {
		businessLocationID = claims.BusinessLocationID
	}
	storeLocationID := r.URL.Query().Get("store_location_id")
	if storeLocationID == "" {
		storeLocationID = claims.StoreLocationID
	}

	// A device can only read the scope its token was minted for.
	if businessLocationID != claims.BusinessLocationID || storeLocationID != claims.StoreLocationID {
		h.logger.WarnContext(ctx, "snapshot scope does not match device token",
			slog.String("device_id", claims.DeviceID),
			slog.String("business_location_id", businessLocationID),
			slog.String("store_location_id", storeLocationID))
		sendError(h.logger, w, "requested scope does not match device", http.StatusForbidden)
		return
	}

	snapshot, err := h.catalog.GetSnapshot(ctx, businessLocationID, storeLocationID)
	if err != nil {
		if errors.Is(err, storage.ErrScopeNotFound) {
			h.logger.WarnContext(ctx, "no catalog for scope",
				slog.String("business_location_id", businessLocationID),
				slog.String("store_location_id", storeLocationID))
			sendError(h.logger, w, "no catalog for this location scope", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to assemble snapshot", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "snapshot served",
		slog.String("device_id", claims.DeviceID),
		slog.Int("items", len(snapshot.Items)),
		slog.Int64("version", snapshot.Version))

	sendJSON(h.logger, w, snapshot, http.StatusOK)
}
