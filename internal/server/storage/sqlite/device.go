package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/RachelleMaina/stocka-sync/internal/models"
	"github.com/RachelleMaina/stocka-sync/internal/server/storage"
)

// CreateDevice registers a new device
func (s *Storage) CreateDevice(ctx context.Context, device *models.Device) error {
	query := `
		INSERT INTO devices (id, name, business_location_id, store_location_id, registered_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		device.ID,
		device.Name,
		device.BusinessLocationID,
		device.StoreLocationID,
		device.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert device: %w", err)
	}

	return nil
}

// GetDevice retrieves a device by ID
func (s *Storage) GetDevice(ctx context.Context, deviceID string) (*models.Device, error) {
	query := `
		SELECT id, name, business_location_id, store_location_id, registered_at
		FROM devices
		WHERE id = ?
	`

	device := &models.Device{}
	err := s.db.QueryRowContext(ctx, query, deviceID).Scan(
		&device.ID,
		&device.Name,
		&device.BusinessLocationID,
		&device.StoreLocationID,
		&device.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDeviceNotFound
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return device, nil
}

// CreatePairingCode stores a freshly issued code
func (s *Storage) CreatePairingCode(ctx context.Context, code *models.PairingCode) error {
	query := `
		INSERT INTO pairing_codes (id, code_hash, business_location_id, store_location_id, created_at, expires_at, used_by_device_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		code.ID,
		code.CodeHash,
		code.BusinessLocationID,
		code.StoreLocationID,
		code.CreatedAt,
		code.ExpiresAt,
		code.UsedByDeviceID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert pairing code: %w", err)
	}

	return nil
}

// ListUsablePairingCodes returns codes that are neither consumed nor expired
func (s *Storage) ListUsablePairingCodes(ctx context.Context, now time.Time) ([]*models.PairingCode, error) {
	query := `
		SELECT id, code_hash, business_location_id, store_location_id, created_at, expires_at, used_by_device_id
		FROM pairing_codes
		WHERE used_by_device_id = '' AND expires_at > ?
	`

	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query pairing codes: %w", err)
	}
	defer rows.Close()

	var codes []*models.PairingCode
	for rows.Next() {
		code := &models.PairingCode{}
		if err := rows.Scan(
			&code.ID,
			&code.CodeHash,
			&code.BusinessLocationID,
			&code.StoreLocationID,
			&code.CreatedAt,
			&code.ExpiresAt,
			&code.UsedByDeviceID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pairing code: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pairing codes: %w", err)
	}

	return codes, nil
}

// MarkPairingCodeUsed consumes the code for the given device. The WHERE
// clause guards against two devices racing for the same code.
func (s *Storage) MarkPairingCodeUsed(ctx context.Context, codeID, deviceID string) error {
	query := `
		UPDATE pairing_codes
		SET used_by_device_id = ?
		WHERE id = ? AND used_by_device_id = ''
	`

	res, err := s.db.ExecContext(ctx, query, deviceID, codeID)
	if err != nil {
		return fmt.Errorf("failed to mark pairing code used: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check pairing code update: %w", err)
	}
	if affected == 0 {
		return storage.ErrPairingCodeInvalid
	}

	return nil
}
