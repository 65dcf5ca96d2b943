package models

import (
	"encoding/json"
	"time"

	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

// OperationKind identifies the type of a queued write so the sync worker
// can dispatch it deterministically instead of inspecting payload shapes.
type OperationKind string

const (
	// OpKindRecordSale is a sale recorded at the till while offline.
	OpKindRecordSale OperationKind = "record_sale"
)

// OperationStatus describes the lifecycle state of a queued operation.
type OperationStatus string

const (
	// OpStatusPending means the operation is waiting to be confirmed by the server.
	OpStatusPending OperationStatus = "pending"
	// OpStatusAbandoned means the operation hit a terminal failure or the retry
	// ceiling and is retained for operator review.
	OpStatusAbandoned OperationStatus = "abandoned"
)

// PendingOperation is one not-yet-confirmed write. The ID doubles as the
// idempotency key sent to the server, so a retried submission after a lost
// response is recognized as already applied.
type PendingOperation struct {
	CreatedAt     time.Time       `json:"created_at"`
	LastAttemptAt time.Time       `json:"last_attempt_at"`
	NextAttemptAt time.Time       `json:"next_attempt_at"`
	ID            string          `json:"id"`
	Kind          OperationKind   `json:"kind"`
	Status        OperationStatus `json:"status"`
	LastError     string          `json:"last_error,omitempty"`
	Payload       json.RawMessage `json:"payload"`
	Seq           uint64          `json:"seq"`
	Attempts      int             `json:"attempts"`
}

// Sale decodes the payload of a record_sale operation.
func (op *PendingOperation) Sale() (*api.SaleDocument, error) {
	var sale api.SaleDocument
	if err := json.Unmarshal(op.Payload, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}
