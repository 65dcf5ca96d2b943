package cli

import (
	"strings"

	"github.com/RachelleMaina/stocka-sync/internal/models"
	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

// defaultCurrency is used when the snapshot carries no price override for
// an item.
const defaultCurrency = "KES"

// findItem looks an item up by SKU first, then by ID. Case-insensitive on
// SKU because cashiers type them.
func findItem(snap *models.ReferenceSnapshot, skuOrID string) *api.Item {
	for i := range snap.Items {
		if strings.EqualFold(snap.Items[i].SKU, skuOrID) {
			return &snap.Items[i]
		}
	}
	for i := range snap.Items {
		if snap.Items[i].ID == skuOrID {
			return &snap.Items[i]
		}
	}
	return nil
}

// resolvePrice returns the store price override when one exists, falling
// back to the catalog selling price.
func resolvePrice(snap *models.ReferenceSnapshot, item *api.Item) (float64, string) {
	for _, p := range snap.Prices {
		if p.ItemID == item.ID && p.StoreLocationID == snap.Scope.StoreLocationID {
			return p.Amount, p.Currency
		}
	}
	return item.SellingPrice, defaultCurrency
}

func uomCode(snap *models.ReferenceSnapshot, uomID string) string {
	for _, u := range snap.UoMs {
		if u.ID == uomID {
			return u.Code
		}
	}
	return ""
}
