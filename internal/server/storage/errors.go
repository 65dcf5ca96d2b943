package storage

import "errors"

// Common storage errors
var (
	// ErrDeviceNotFound indicates that the device was not found in storage
	ErrDeviceNotFound = errors.New("device not found")

	// ErrSaleNotFound indicates that no sale matches the given key
	ErrSaleNotFound = errors.New("sale not found")

	// ErrDuplicateSale indicates a sale with this idempotency key already exists
	ErrDuplicateSale = errors.New("sale already applied")

	// ErrPairingCodeInvalid indicates the pairing code is unknown, expired or
	// already consumed
	ErrPairingCodeInvalid = errors.New("invalid pairing code")

	// ErrScopeNotFound indicates the business/store location scope does not exist
	ErrScopeNotFound = errors.New("location scope not found")
)
