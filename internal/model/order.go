// Package model defines the input contract of the emission engine: the
// order being invoiced and the issuer/authority/technical-responsible
// configuration blocks supplied by the surrounding application.
//
// All types here are plain value carriers. The engine never mutates an
// Order; every emission builds its document from a fresh read of these
// structs.
package model

import (
	"github.com/shopspring/decimal"
)

// Order is the sale being turned into an NFC-e document.
type Order struct {
	ID         string          `json:"id"`
	Items      []LineItem      `json:"items"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// LineItem is one order line. Quantity carries 4-fraction-digit
// semantics and UnitPrice 10-fraction-digit semantics on the wire;
// both are kept as exact decimals until serialization.
type LineItem struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// LineTotal returns quantity × unit price rounded to 2 places, the
// monetary precision of the target schema.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice).Round(2)
}
