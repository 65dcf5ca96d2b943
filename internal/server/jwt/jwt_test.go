package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, expiresIn, err := svc.GenerateDeviceToken("device-1", "biz-1", "store-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.ValidateDeviceToken(token)
	require.NoError(t, err)
	assert.Equal(t, "device-1", claims.DeviceID)
	assert.Equal(t, "biz-1", claims.BusinessLocationID)
	assert.Equal(t, "store-1", claims.StoreLocationID)
	assert.Equal(t, "device-1", claims.Subject)
}

func TestService_ExpiredToken(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	token, _, err := svc.GenerateDeviceToken("device-1", "biz-1", "store-1")
	require.NoError(t, err)

	_, err = svc.ValidateDeviceToken(token)
	assert.Error(t, err)
}

func TestService_WrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	token, _, err := issuer.GenerateDeviceToken("device-1", "biz-1", "store-1")
	require.NoError(t, err)

	_, err = verifier.ValidateDeviceToken(token)
	assert.Error(t, err)
}

func TestService_GarbageToken(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	_, err := svc.ValidateDeviceToken("not.a.token")
	assert.Error(t, err)
}
