package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the backoffice operations the device depends on.
type ClientAPI interface {
	// RegisterDevice pairs the device using an operator-issued pairing code.
	RegisterDevice(ctx context.Context, req api.RegisterDeviceRequest) (*api.RegisterDeviceResponse, error)

	// SubmitSale submits one sale under the given idempotency key. A retried
	// submission after a lost response returns AlreadyApplied instead of
	// creating a duplicate.
	SubmitSale(ctx context.Context, accessToken, idempotencyKey string, req api.SubmitSaleRequest) (*api.SubmitSaleResponse, error)

	// FetchSnapshot fetches the full reference data set for one scope in a
	// single response.
	FetchSnapshot(ctx context.Context, accessToken, businessLocationID, storeLocationID string) (*api.SnapshotResponse, error)

	// Health probes backoffice reachability. Used by the connectivity
	// watcher and as the sync preflight.
	Health(ctx context.Context) error
}

// Client is the HTTP client for the backoffice server
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep auth and idempotency headers across redirects
				if len(via) > 0 {
					for _, h := range []string{"Authorization", api.IdempotencyKeyHeader} {
						if v := via[0].Header.Get(h); v != "" {
							req.Header.Set(h, v)
						}
					}
				}
				return nil
			},
		},
	}
}

// RegisterDevice pairs the device with the backoffice
func (c *Client) RegisterDevice(ctx context.Context, req api.RegisterDeviceRequest) (*api.RegisterDeviceResponse, error) {
	var resp api.RegisterDeviceResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/devices/register", "", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register device request failed: %w", err)
	}
	return &resp, nil
}

// SubmitSale submits one sale document under the given idempotency key
func (c *Client) SubmitSale(ctx context.Context, accessToken, idempotencyKey string, req api.SubmitSaleRequest) (*api.SubmitSaleResponse, error) {
	var resp api.SubmitSaleResponse
	headers := map[string]string{api.IdempotencyKeyHeader: idempotencyKey}
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/sales", accessToken, headers, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("submit sale request failed: %w", err)
	}
	return &resp, nil
}

// FetchSnapshot fetches the full reference data set for one scope
func (c *Client) FetchSnapshot(ctx context.Context, accessToken, businessLocationID, storeLocationID string) (*api.SnapshotResponse, error) {
	var resp api.SnapshotResponse
	query := url.Values{
		"business_location_id": {businessLocationID},
		"store_location_id":    {storeLocationID},
	}
	path := "/api/v1/snapshot?" + query.Encode()
	err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot request failed: %w", err)
	}
	return &resp, nil
}

// Health probes backoffice reachability
func (c *Client) Health(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, nil, nil)
}

// doRequest performs one HTTP exchange against the backoffice
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, headers map[string]string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Code: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			statusErr.Message = errResp.Error
			if errResp.Message != "" {
				statusErr.Message += ": " + errResp.Message
			}
		} else {
			statusErr.Message = string(respBody)
		}
		return statusErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
