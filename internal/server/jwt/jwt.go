// Package jwt issues and validates the device access tokens handed out at
// registration time.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Service provides device token generation and validation
type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

// DeviceClaims are the claims carried by a device access token. The scope
// is baked into the token so every later request is checked against the
// store the device was paired to.
type DeviceClaims struct {
	DeviceID           string `json:"device_id"`
	BusinessLocationID string `json:"business_location_id"`
	StoreLocationID    string `json:"store_location_id"`
	jwt.RegisteredClaims
}

// NewService creates a new JWT service
// secret should be a cryptographically secure random string
func NewService(secret string, tokenTTL time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// GenerateDeviceToken creates a signed access token for the device.
// Returns the token and its lifetime in seconds.
func (s *Service) GenerateDeviceToken(deviceID, businessLocationID, storeLocationID string) (string, int64, error) {
	now := time.Now()
	claims := DeviceClaims{
		DeviceID:           deviceID,
		BusinessLocationID: businessLocationID,
		StoreLocationID:    storeLocationID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   deviceID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign device token: %w", err)
	}

	return token, int64(s.tokenTTL.Seconds()), nil
}

// ValidateDeviceToken validates the token and returns its claims
func (s *Service) ValidateDeviceToken(tokenString string) (*DeviceClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &DeviceClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*DeviceClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
