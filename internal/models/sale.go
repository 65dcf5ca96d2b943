package models

import (
	"encoding/json"
	"time"
)

// Sale is the durable backoffice record of an applied sale. The idempotency
// key makes replayed submissions converge on the same row.
type Sale struct {
	AppliedAt          time.Time       `json:"applied_at"`
	SoldAt             time.Time       `json:"sold_at"`
	ID                 string          `json:"id"`
	IdempotencyKey     string          `json:"idempotency_key"`
	DeviceID           string          `json:"device_id"`
	BusinessLocationID string          `json:"business_location_id"`
	StoreLocationID    string          `json:"store_location_id"`
	Currency           string          `json:"currency"`
	Document           json.RawMessage `json:"document"`
	Total              float64         `json:"total"`
}

// Device is a registered POS device as the backoffice sees it.
type Device struct {
	RegisteredAt       time.Time `json:"registered_at"`
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	BusinessLocationID string    `json:"business_location_id"`
	StoreLocationID    string    `json:"store_location_id"`
}

// PairingCode is an operator-issued, single-use credential that lets one
// device register itself into a business/store location scope. Only the
// bcrypt hash of the code is stored.
type PairingCode struct {
	CreatedAt          time.Time `json:"created_at"`
	ExpiresAt          time.Time `json:"expires_at"`
	ID                 string    `json:"id"`
	CodeHash           string    `json:"-"`
	BusinessLocationID string    `json:"business_location_id"`
	StoreLocationID    string    `json:"store_location_id"`
	UsedByDeviceID     string    `json:"used_by_device_id,omitempty"`
}

// Usable reports whether the code can still register a device.
func (p *PairingCode) Usable(now time.Time) bool {
	return p.UsedByDeviceID == "" && now.Before(p.ExpiresAt)
}
