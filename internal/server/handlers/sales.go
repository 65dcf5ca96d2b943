package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/RachelleMaina/stocka-sync/internal/models"
	"github.com/RachelleMaina/stocka-sync/internal/server/storage"
	"github.com/RachelleMaina/stocka-sync/internal/validation"
	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

// SaleHandler handles sale submissions from devices
type SaleHandler struct {
	logger *slog.Logger
	sales  storage.SaleStorage
}

// NewSaleHandler creates a new handler for sale submissions
func NewSaleHandler(logger *slog.Logger, sales storage.SaleStorage) *SaleHandler {
	return &SaleHandler{
		logger: logger,
		sales:  sales,
	}
}

// Submit handles POST /api/v1/sales
// Applies a sale exactly once, keyed by the Idempotency-Key header. A replay
// of a key that was already applied returns the original sale with
// already_applied set, so devices can safely resubmit after a lost response.
func (h *SaleHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := GetDeviceClaims(ctx)
	if !ok {
		h.logger.Error("device claims not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	idempotencyKey := r.Header.Get(api.IdempotencyKeyHeader)
	if idempotencyKey == "" {
		sendError(h.logger, w, api.IdempotencyKeyHeader+" header is required", http.StatusBadRequest)
		return
	}

	var req api.SubmitSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode sale request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	doc := req.Sale

	// Structural rejections are final. The device abandons the operation
	// instead of retrying it.
	if err := validation.ValidateSaleDocument(&doc); err != nil {
		h.logger.WarnContext(ctx, "sale rejected",
			slog.String("idempotency_key", idempotencyKey),
			slog.String("device_id", claims.DeviceID),
			slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	// A device can only write into the scope its token was minted for.
	if doc.BusinessLocationID != claims.BusinessLocationID || doc.StoreLocationID != claims.StoreLocationID {
		h.logger.WarnContext(ctx, "sale scope does not match device token",
			slog.String("device_id", claims.DeviceID),
			slog.String("sale_business_location_id", doc.BusinessLocationID),
			slog.String("sale_store_location_id", doc.StoreLocationID))
		sendError(h.logger, w, "sale location scope does not match device", http.StatusForbidden)
		return
	}

	document, err := json.Marshal(doc)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to marshal sale document", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sale := &models.Sale{
		ID:                 uuid.New().String(),
		IdempotencyKey:     idempotencyKey,
		DeviceID:           claims.DeviceID,
		BusinessLocationID: doc.BusinessLocationID,
		StoreLocationID:    doc.StoreLocationID,
		Currency:           doc.Currency,
		Document:           document,
		Total:              doc.Total,
		SoldAt:             doc.SoldAt,
		AppliedAt:          time.Now(),
	}

	if err := h.sales.CreateSale(ctx, sale); err != nil {
		if errors.Is(err, storage.ErrDuplicateSale) {
			h.replayExisting(w, r, idempotencyKey)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create sale",
			slog.String("idempotency_key", idempotencyKey),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "sale applied",
		slog.String("sale_id", sale.ID),
		slog.String("idempotency_key", idempotencyKey),
		slog.String("device_id", claims.DeviceID),
		slog.Float64("total", sale.Total))

	resp := api.SubmitSaleResponse{
		SaleID:         sale.ID,
		AlreadyApplied: false,
		AppliedAt:      sale.AppliedAt,
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// replayExisting answers a duplicate submission with the sale applied the
// first time the key was seen.
func (h *SaleHandler) replayExisting(w http.ResponseWriter, r *http.Request, idempotencyKey string) {
	ctx := r.Context()

	existing, err := h.sales.GetSaleByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load sale for duplicate key",
			slog.String("idempotency_key", idempotencyKey),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "sale already applied",
		slog.String("sale_id", existing.ID),
		slog.String("idempotency_key", idempotencyKey))

	resp := api.SubmitSaleResponse{
		SaleID:         existing.ID,
		AlreadyApplied: true,
		AppliedAt:      existing.AppliedAt,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
