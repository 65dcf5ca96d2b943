package handlers

import (
	"context"

	"github.com/RachelleMaina/stocka-sync/internal/server/jwt"
)

// contextKey is the type for request context keys set by middleware
type contextKey string

// DeviceClaimsKey holds the authenticated device claims in the request context
const DeviceClaimsKey contextKey = "device_claims"

// GetDeviceClaims extracts the authenticated device claims from the request
// context. The auth middleware sets them on every protected route.
func GetDeviceClaims(ctx context.Context) (*jwt.DeviceClaims, bool) {
	claims, ok := ctx.Value(DeviceClaimsKey).(*jwt.DeviceClaims)
	return claims, ok
}
