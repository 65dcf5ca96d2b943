package api

// RegisterDeviceRequest pairs a POS device with the backoffice. The pairing
// code is issued out of band by the backoffice operator.
type RegisterDeviceRequest struct {
	PairingCode string `json:"pairing_code"`
	DeviceName  string `json:"device_name"`
}

// RegisterDeviceResponse carries the device identity and the access token
// used for all subsequent calls.
type RegisterDeviceResponse struct {
	DeviceID           string `json:"device_id"`
	BusinessLocationID string `json:"business_location_id"`
	StoreLocationID    string `json:"store_location_id"`
	AccessToken        string `json:"access_token"` // JWT device token
	ExpiresIn          int64  `json:"expires_in"`   // access token lifetime in seconds
}

// ErrorResponse is the error envelope returned by the backoffice.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
