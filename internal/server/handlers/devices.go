package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/RachelleMaina/stocka-sync/internal/models"
	"github.com/RachelleMaina/stocka-sync/internal/server/pairing"
	"github.com/RachelleMaina/stocka-sync/internal/server/storage"
	"github.com/RachelleMaina/stocka-sync/internal/validation"
	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

// TokenIssuer mints device access tokens
type TokenIssuer interface {
	GenerateDeviceToken(deviceID, businessLocationID, storeLocationID string) (string, int64, error)
}

// DeviceHandler handles device registration
type DeviceHandler struct {
	logger  *slog.Logger
	devices storage.DeviceStorage
	codes   storage.PairingStorage
	tokens  TokenIssuer
}

// NewDeviceHandler creates a new handler for device registration
func NewDeviceHandler(logger *slog.Logger, devices storage.DeviceStorage, codes storage.PairingStorage, tokens TokenIssuer) *DeviceHandler {
	return &DeviceHandler{
		logger:  logger,
		devices: devices,
		codes:   codes,
		tokens:  tokens,
	}
}

// Register handles POST /api/v1/devices/register
// Exchanges an operator-issued pairing code for a device identity and token
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateDeviceName(req.DeviceName); err != nil {
		h.logger.WarnContext(ctx, "invalid device name", slog.String("device_name", req.DeviceName), slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.PairingCode == "" {
		sendError(h.logger, w, "pairing_code is required", http.StatusBadRequest)
		return
	}

	// Codes are stored as bcrypt hashes, so the presented code has to be
	// compared against every usable hash. The usable set stays tiny: codes
	// are single use and expire within hours.
	code, err := h.matchPairingCode(r, req.PairingCode)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to look up pairing codes", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if code == nil {
		h.logger.WarnContext(ctx, "pairing failed: no matching code", slog.String("device_name", req.DeviceName))
		sendError(h.logger, w, "invalid or expired pairing code", http.StatusUnauthorized)
		return
	}

	device := &models.Device{
		ID:                 uuid.New().String(),
		Name:               req.DeviceName,
		BusinessLocationID: code.BusinessLocationID,
		StoreLocationID:    code.StoreLocationID,
		RegisteredAt:       time.Now(),
	}

	if err := h.devices.CreateDevice(ctx, device); err != nil {
		h.logger.ErrorContext(ctx, "failed to create device", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Consuming the code is conditional on it still being unused, which
	// closes the race between two devices pairing with the same code.
	if err := h.codes.MarkPairingCodeUsed(ctx, code.ID, device.ID); err != nil {
		if errors.Is(err, storage.ErrPairingCodeInvalid) {
			h.logger.WarnContext(ctx, "pairing code consumed concurrently", slog.String("code_id", code.ID))
			sendError(h.logger, w, "invalid or expired pairing code", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to consume pairing code", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	accessToken, expiresIn, err := h.tokens.GenerateDeviceToken(device.ID, device.BusinessLocationID, device.StoreLocationID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate device token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "device registered",
		slog.String("device_id", device.ID),
		slog.String("device_name", device.Name),
		slog.String("business_location_id", device.BusinessLocationID),
		slog.String("store_location_id", device.StoreLocationID))

	resp := api.RegisterDeviceResponse{
		DeviceID:           device.ID,
		BusinessLocationID: device.BusinessLocationID,
		StoreLocationID:    device.StoreLocationID,
		AccessToken:        accessToken,
		ExpiresIn:          expiresIn,
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// matchPairingCode returns the usable stored code matching the presented one,
// or nil when nothing matches.
func (h *DeviceHandler) matchPairingCode(r *http.Request, presented string) (*models.PairingCode, error) {
	codes, err := h.codes.ListUsablePairingCodes(r.Context(), time.Now())
	if err != nil {
		return nil, err
	}

	for _, code := range codes {
		if pairing.VerifyCode(presented, code.CodeHash) {
			return code, nil
		}
	}
	return nil, nil
}
