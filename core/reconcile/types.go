package reconcile

import "fmt"

// SupplierRecord is one row of the supplier inventory spreadsheet.
// All fields are raw cell text; interpretation happens during reconciliation.
type SupplierRecord struct {
	// Code is the supplier's article code, expected to match a catalog
	// offer id. May carry surrounding whitespace from the spreadsheet.
	Code string

	// Quantity is the free-form stock cell: a numeric string, ">10",
	// or "1" (which the supplier uses to mean "reserved").
	Quantity string

	// Price is the localized price cell, e.g. "5'990.00 руб".
	Price string
}

// StockUpdate is one entry of the stock import payload.
type StockUpdate struct {
	// OfferID identifies the offer in the seller catalog.
	OfferID string `json:"offer_id"`

	// Stock is the quantity to publish, after bucketing.
	Stock int `json:"stock"`
}

// PriceUpdate is one entry of the price import payload.
// CurrencyCode, AutoActionEnabled and OldPrice are fixed by the seller API
// contract and always carry the same sentinel values.
type PriceUpdate struct {
	// AutoActionEnabled leaves automatic pricing actions untouched.
	AutoActionEnabled string `json:"auto_action_enabled"`

	// CurrencyCode is always RUB.
	CurrencyCode string `json:"currency_code"`

	// OfferID identifies the offer in the seller catalog.
	OfferID string `json:"offer_id"`

	// OldPrice of "0" tells the API not to display a crossed-out price.
	OldPrice string `json:"old_price"`

	// Price is the normalized integer price string.
	Price string `json:"price"`
}

// Fixed payload values required by the price import endpoint.
const (
	CurrencyRUB       = "RUB"
	AutoActionUnknown = "UNKNOWN"
	OldPriceZero      = "0"
)

// ValidationError reports a supplier cell that cannot be interpreted.
// Reconciliation stops on the first one; skipping rows silently would
// corrupt the published totals.
type ValidationError struct {
	// Code is the supplier record the bad cell belongs to.
	Code string

	// Field names the offending column ("quantity").
	Field string

	// Value is the raw cell text.
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q for code %s", e.Field, e.Value, e.Code)
}
