// Package validation holds the request-level checks the backoffice applies
// before accepting data from devices. A sale that fails these checks is
// rejected for good; the device must not retry it.
package validation

import (
	"fmt"
	"math"
	"regexp"

	"github.com/RachelleMaina/stocka-sync/pkg/api"
)

// DeviceNamePattern defines the accepted device name format: letters,
// digits, spaces, dashes and underscores, 3-64 characters.
var DeviceNamePattern = regexp.MustCompile(`^[a-zA-Z0-9 _-]{3,64}$`)

const (
	// MaxSaleLines caps the number of lines on a single receipt
	MaxSaleLines = 500

	// totalTolerance absorbs float rounding when comparing money amounts
	totalTolerance = 0.005
)

// ValidateDeviceName checks that a device name is present and well formed.
func ValidateDeviceName(name string) error {
	if name == "" {
		return fmt.Errorf("device name cannot be empty")
	}
	if !DeviceNamePattern.MatchString(name) {
		return fmt.Errorf("device name must be 3-64 characters: letters, digits, spaces, dashes and underscores")
	}
	return nil
}

// ValidateSaleDocument checks a submitted sale for structural integrity.
// Scope checks against the device token are the handler's job.
func ValidateSaleDocument(doc *api.SaleDocument) error {
	if doc.SoldAt.IsZero() {
		return fmt.Errorf("sold_at is required")
	}
	if doc.BusinessLocationID == "" {
		return fmt.Errorf("business_location_id is required")
	}
	if doc.StoreLocationID == "" {
		return fmt.Errorf("store_location_id is required")
	}
	if doc.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if doc.PaymentMethod == "" {
		return fmt.Errorf("payment_method is required")
	}
	if len(doc.Lines) == 0 {
		return fmt.Errorf("sale must have at least one line")
	}
	if len(doc.Lines) > MaxSaleLines {
		return fmt.Errorf("sale exceeds %d lines", MaxSaleLines)
	}

	var sum float64
	for i, line := range doc.Lines {
		if err := validateSaleLine(&line); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += line.LineTotal
	}

	if math.Abs(sum-doc.Total) > totalTolerance {
		return fmt.Errorf("total %.2f does not match sum of lines %.2f", doc.Total, sum)
	}

	return nil
}

func validateSaleLine(line *api.SaleLine) error {
	if line.ItemID == "" {
		return fmt.Errorf("item_id is required")
	}
	if line.UoMCode == "" {
		return fmt.Errorf("uom_code is required")
	}
	if line.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if line.UnitPrice < 0 {
		return fmt.Errorf("unit_price cannot be negative")
	}
	if math.Abs(line.Quantity*line.UnitPrice-line.LineTotal) > totalTolerance {
		return fmt.Errorf("line_total %.2f does not match quantity * unit_price", line.LineTotal)
	}
	return nil
}
