package api

import "time"

// IdempotencyKeyHeader carries the client-generated operation id on sale
// submissions. The server must treat a repeated key as already applied.
const IdempotencyKeyHeader = "Idempotency-Key"

// SaleLine is one line on a receipt.
type SaleLine struct {
	ItemID    string  `json:"item_id"`
	ItemName  string  `json:"item_name"`
	UoMCode   string  `json:"uom_code"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// SaleDocument is the business document recorded by a sale. It is created
// at the till, possibly offline, and submitted to the backoffice once
// connectivity allows.
type SaleDocument struct {
	SoldAt             time.Time  `json:"sold_at"`
	BusinessLocationID string     `json:"business_location_id"`
	StoreLocationID    string     `json:"store_location_id"`
	Cashier            string     `json:"cashier"`
	PaymentMethod      string     `json:"payment_method"`
	Currency           string     `json:"currency"`
	Lines              []SaleLine `json:"lines"`
	Total              float64    `json:"total"`
}

// SubmitSaleRequest submits one sale document recorded at the till.
type SubmitSaleRequest struct {
	Sale SaleDocument `json:"sale"`
}

// SubmitSaleResponse reports the durable server-side identity of the sale.
// AlreadyApplied is true when the idempotency key was seen before, in which
// case SaleID is the id assigned on the first application.
type SubmitSaleResponse struct {
	AppliedAt      time.Time `json:"applied_at"`
	SaleID         string    `json:"sale_id"`
	AlreadyApplied bool      `json:"already_applied"`
}
