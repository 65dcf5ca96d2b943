package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/RachelleMaina/stocka-sync/internal/server/handlers"
	"github.com/RachelleMaina/stocka-sync/internal/server/jwt"
)

// TokenValidator validates device access tokens
type TokenValidator interface {
	ValidateDeviceToken(tokenString string) (*jwt.DeviceClaims, error)
}

// AuthMiddleware creates middleware that authenticates device tokens.
// Validated claims are stored in the request context under
// handlers.DeviceClaimsKey.
func AuthMiddleware(logger *slog.Logger, validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format")
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateDeviceToken(parts[1])
			if err != nil {
				logger.Warn("invalid device token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), handlers.DeviceClaimsKey, claims)

			logger.Debug("device authenticated",
				"device_id", claims.DeviceID,
				"business_location_id", claims.BusinessLocationID,
				"store_location_id", claims.StoreLocationID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
