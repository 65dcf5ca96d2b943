package handlers

import (
	"bytes"
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

func testSaleDocument() api.SaleDocument {
	return api.SaleDocument{
		SoldAt:             time.Now().Add(-time.Hour),
		BusinessLocationID: "biz-1",
		StoreLocationID:    "store-1",
		Cashier:            "jane",
		PaymentMethod:      "cash",
		Currency:           "KES",
		Lines: []api.SaleLine{
			{ItemID: "item-1", ItemName: "Maize Flour 2kg", UoMCode: "pcs", Quantity: 2, UnitPrice: 175, LineTotal: 350},
		},
		Total: 350,
	}
}

func submitSaleRequest(t *testing.T, deviceID, idempotencyKey string, doc api.SaleDocument) *http.Request {
	t.Helper()

	data, err := json.Marshal(api.SubmitSaleRequest{Sale: doc})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(data))
	if idempotencyKey != "" {
		req.Header.Set(api.IdempotencyKeyHeader, idempotencyKey)
	}
	return req.WithContext(withClaims(req.Context(), deviceID, "biz-1", "store-1"))
}

func TestSaleHandler_Submit(t *testing.T) {
	store := setupStorage(t)
	device := registerTestDevice(t, store, "biz-1", "store-1")
	handler := NewSaleHandler(testLogger(), store)

	w := httptest.NewRecorder()
	handler.Submit(w, submitSaleRequest(t, device.ID, "op-1", testSaleDocument()))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp api.SubmitSaleResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.SaleID)
	assert.False(t, resp.AlreadyApplied)
	assert.False(t, resp.AppliedAt.IsZero())

	sale, err := store.GetSaleByIdempotencyKey(context.Background(), "op-1")
	require.NoError(t, err)
	assert.Equal(t, resp.SaleID, sale.ID)
	assert.Equal(t, device.ID, sale.DeviceID)
	assert.InDelta(t, 350, sale.Total, 0.001)
}

func TestSaleHandler_Submit_DuplicateKeyReplays(t *testing.T) {
	store := setupStorage(t)
	device := registerTestDevice(t, store, "biz-1", "store-1")
	handler := NewSaleHandler(testLogger(), store)

	w := httptest.NewRecorder()
	handler.Submit(w, submitSaleRequest(t, device.ID, "op-1", testSaleDocument()))
	require.Equal(t, http.StatusCreated, w.Code)

	var first api.SubmitSaleResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&first))

	// Resubmission with the same key must not create a second sale
	w = httptest.NewRecorder()
	handler.Submit(w, submitSaleRequest(t, device.ID, "op-1", testSaleDocument()))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var second api.SubmitSaleResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&second))
	assert.True(t, second.AlreadyApplied)
	assert.Equal(t, first.SaleID, second.SaleID)

	var count int
	err := store.DB().QueryRow("SELECT COUNT(*) FROM sales WHERE idempotency_key = ?", "op-1").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "exactly one sale row per idempotency key")
}

func TestSaleHandler_Submit_MissingIdempotencyKey(t *testing.T) {
	store := setupStorage(t)
	device := registerTestDevice(t, store, "biz-1", "store-1")
	handler := NewSaleHandler(testLogger(), store)

	w := httptest.NewRecorder()
	handler.Submit(w, submitSaleRequest(t, device.ID, "", testSaleDocument()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), api.IdempotencyKeyHeader)
}

func TestSaleHandler_Submit_InvalidDocument(t *testing.T) {
	store := setupStorage(t)
	device := registerTestDevice(t, store, "biz-1", "store-1")
	handler := NewSaleHandler(testLogger(), store)

	doc := testSaleDocument()
	doc.Lines = nil

	w := httptest.NewRecorder()
	handler.Submit(w, submitSaleRequest(t, device.ID, "op-1", doc))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Nothing persisted
	_, err := store.GetSaleByIdempotencyKey(context.Background(), "op-1")
	assert.Error(t, err)
}

func TestSaleHandler_Submit_ScopeMismatch(t *testing.T) {
	store := setupStorage(t)
	device := registerTestDevice(t, store, "biz-1", "store-1")
	handler := NewSaleHandler(testLogger(), store)

	doc := testSaleDocument()
	doc.StoreLocationID = "store-2"
	doc.Lines[0].LineTotal = 350

	w := httptest.NewRecorder()
	handler.Submit(w, submitSaleRequest(t, device.ID, "op-1", doc))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSaleHandler_Submit_NoClaims(t *testing.T) {
	store := setupStorage(t)
	handler := NewSaleHandler(testLogger(), store)

	data, err := json.Marshal(api.SubmitSaleRequest{Sale: testSaleDocument()})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(data))
	req.Header.Set(api.IdempotencyKeyHeader, "op-1")

	w := httptest.NewRecorder()
	handler.Submit(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
