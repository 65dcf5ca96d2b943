package models

import "time"

// DeviceIdentity is the pairing state stored on the device after
// registration with the backoffice.
type DeviceIdentity struct {
	RegisteredAt       time.Time `json:"registered_at"`
	DeviceID           string    `json:"device_id"`
	DeviceName         string    `json:"device_name"`
	BusinessLocationID string    `json:"business_location_id"`
	StoreLocationID    string    `json:"store_location_id"`
	AccessToken        string    `json:"access_token"`
	ExpiresAt          int64     `json:"expires_at"` // unix seconds
}

// TokenExpired reports whether the device access token is past its expiry.
func (d *DeviceIdentity) TokenExpired(now time.Time) bool {
	return now.Unix() >= d.ExpiresAt
}
