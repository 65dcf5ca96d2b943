package models

import (
	"time"

	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

// SnapshotScope identifies which business and store location a reference
// snapshot was pulled for. A device moved to a different store produces a
// scope mismatch that requires an explicit forced refresh.
type SnapshotScope struct {
	BusinessLocationID string `json:"business_location_id"`
	StoreLocationID    string `json:"store_location_id"`
}

// ReferenceSnapshot is the locally cached copy of catalog/reference data
// needed to operate offline. It is replaced wholesale on each successful
// pull and never partially patched; consumers never observe a partial one.
type ReferenceSnapshot struct {
	PulledAt time.Time     `json:"pulled_at"`
	Scope    SnapshotScope `json:"scope"`
	Items    []api.Item    `json:"items"`
	UoMs     []api.UoM     `json:"uoms"`
	Prices   []api.Price   `json:"prices"`
	Version  int64         `json:"version"`
}
