package api

// Item is one catalog entry usable for offline selling.
type Item struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	UoMID        string  `json:"uom_id"`
	SellingPrice float64 `json:"selling_price"`
}

// UoM is a unit of measure referenced by catalog items.
type UoM struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Price is a store-scoped price override for an item.
type Price struct {
	ItemID          string  `json:"item_id"`
	StoreLocationID string  `json:"store_location_id"`
	Currency        string  `json:"currency"`
	Amount          float64 `json:"amount"`
}

// SnapshotResponse is the full reference data set for one business/store
// location scope, assembled by the server inside a single transaction so the
// client never observes a torn snapshot. There is no pagination.
type SnapshotResponse struct {
	BusinessLocationID string  `json:"business_location_id"`
	StoreLocationID    string  `json:"store_location_id"`
	Items              []Item  `json:"items"`
	UoMs               []UoM   `json:"uoms"`
	Prices             []Price `json:"prices"`
	Version            int64   `json:"version"` // server clock, monotonic per scope
}
