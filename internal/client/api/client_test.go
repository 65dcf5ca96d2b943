package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_RegisterDevice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/devices/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.RegisterDeviceRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		assert.Equal(t, "PAIR-1234", req.PairingCode)
		assert.Equal(t, "till-1", req.DeviceName)

		w.WriteHeader(http.StatusCreated)
		resp := api.RegisterDeviceResponse{
			DeviceID:           "device-123",
			BusinessLocationID: "biz-1",
			StoreLocationID:    "store-1",
			AccessToken:        "jwt-token",
			ExpiresIn:          86400,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	resp, err := client.RegisterDevice(ctx, api.RegisterDeviceRequest{
		PairingCode: "PAIR-1234",
		DeviceName:  "till-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "device-123", resp.DeviceID)
	assert.Equal(t, "biz-1", resp.BusinessLocationID)
	assert.Equal(t, "store-1", resp.StoreLocationID)
	assert.Equal(t, "jwt-token", resp.AccessToken)
	assert.Equal(t, int64(86400), resp.ExpiresIn)
}

func TestClient_RegisterDevice_Error(t *testing.T) {
	tests := []struct {
		responseBody   interface{}
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:       "Invalid pairing code",
			statusCode: http.StatusUnauthorized,
			responseBody: api.ErrorResponse{
				Error: "invalid pairing code",
			},
			expectedErrMsg: "server error (401): invalid pairing code",
		},
		{
			name:       "Missing device name",
			statusCode: http.StatusBadRequest,
			responseBody: api.ErrorResponse{
				Error: "device_name is required",
			},
			expectedErrMsg: "server error (400): device_name is required",
		},
		{
			name:           "Internal server error",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "Internal Server Error",
			expectedErrMsg: "server error (500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(api.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			client := NewClient(server.URL)
			resp, err := client.RegisterDevice(context.Background(), api.RegisterDeviceRequest{
				PairingCode: "PAIR-1234",
				DeviceName:  "till-1",
			})

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

func TestClient_SubmitSale(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/sales", r.URL.Path)
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))
		assert.Equal(t, "op-42", r.Header.Get(api.IdempotencyKeyHeader))

		var req api.SubmitSaleRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "store-1", req.Sale.StoreLocationID)
		assert.Len(t, req.Sale.Lines, 1)

		w.WriteHeader(http.StatusCreated)
		resp := api.SubmitSaleResponse{
			SaleID:    "sale-789",
			AppliedAt: time.Now().UTC(),
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.SubmitSale(context.Background(), "test_token", "op-42", api.SubmitSaleRequest{
		Sale: api.SaleDocument{
			SoldAt:             time.Now().UTC(),
			BusinessLocationID: "biz-1",
			StoreLocationID:    "store-1",
			PaymentMethod:      "cash",
			Currency:           "KES",
			Lines: []api.SaleLine{
				{ItemID: "item-1", Quantity: 1, UnitPrice: 100, LineTotal: 100},
			},
			Total: 100,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "sale-789", resp.SaleID)
	assert.False(t, resp.AlreadyApplied)
}

func TestClient_SubmitSale_AlreadyApplied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// replayed idempotency key: the first application is echoed back
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.SubmitSaleResponse{
			SaleID:         "sale-789",
			AlreadyApplied: true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.SubmitSale(context.Background(), "test_token", "op-42", api.SubmitSaleRequest{})

	require.NoError(t, err)
	assert.True(t, resp.AlreadyApplied)
	assert.Equal(t, "sale-789", resp.SaleID)
}

func TestClient_SubmitSale_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		retryable  bool
		conflict   bool
	}{
		{name: "validation rejection", statusCode: http.StatusUnprocessableEntity, retryable: false},
		{name: "unauthorized", statusCode: http.StatusUnauthorized, retryable: false},
		{name: "idempotency conflict", statusCode: http.StatusConflict, retryable: false, conflict: true},
		{name: "server error", statusCode: http.StatusInternalServerError, retryable: true},
		{name: "bad gateway", statusCode: http.StatusBadGateway, retryable: true},
		{name: "throttled", statusCode: http.StatusTooManyRequests, retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "nope"})
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.SubmitSale(context.Background(), "token", "op-1", api.SubmitSaleRequest{})

			require.Error(t, err)
			se, ok := AsStatusError(err)
			require.True(t, ok, "expected a StatusError through the wrap chain")
			assert.Equal(t, tt.statusCode, se.Code)
			assert.Equal(t, tt.retryable, IsRetryable(err))
			assert.Equal(t, tt.conflict, IsIdempotencyConflict(err))
		})
	}
}

func TestClient_FetchSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/snapshot", r.URL.Path)
		assert.Equal(t, "biz-1", r.URL.Query().Get("business_location_id"))
		assert.Equal(t, "store-1", r.URL.Query().Get("store_location_id"))
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.SnapshotResponse{
			BusinessLocationID: "biz-1",
			StoreLocationID:    "store-1",
			Items:              []api.Item{{ID: "item-1", Name: "Maize flour 2kg"}},
			UoMs:               []api.UoM{{ID: "uom-pcs", Name: "piece", Code: "pcs"}},
			Version:            7,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.FetchSnapshot(context.Background(), "test_token", "biz-1", "store-1")

	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Len(t, resp.UoMs, 1)
	assert.Equal(t, int64(7), resp.Version)
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.Health(context.Background()))
}

func TestClient_Health_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL)
	err := client.Health(context.Background())

	require.Error(t, err)
	assert.True(t, IsRetryable(err), "transport failure must be retryable")
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.SubmitSale(ctx, "token", "op-1", api.SubmitSaleRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("invalid json {{{"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.FetchSnapshot(context.Background(), "token", "biz-1", "store-1")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_RedirectKeepsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/redirected" {
			w.Header().Set("Location", "/redirected")
			w.WriteHeader(http.StatusTemporaryRedirect)
			return
		}

		// both headers must survive the hop
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))
		assert.Equal(t, "op-42", r.Header.Get(api.IdempotencyKeyHeader))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.SubmitSaleResponse{SaleID: "sale-1"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.SubmitSale(context.Background(), "test_token", "op-42", api.SubmitSaleRequest{})

	require.NoError(t, err)
	assert.Equal(t, "sale-1", resp.SaleID)
}
