// Package tax computes the per-line figures of the item block. The
// engine implements a single simplified-regime path (Simples Nacional,
// CSOSN 102) with an approximate embedded-tax percentage; a compliant
// tax engine can be substituted through the Resolver interface without
// touching the document assembly.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/nfce-engine/internal/model"
)

// Fixed codes of the single regime path this engine emits.
const (
	CSOSNSimplesNoCredit = "102" // Simples Nacional, no credit transfer
	OriginNational       = "0"
	CFOPRetailSale       = "5102"
	NCMUnclassified      = "00000000"
	UnitCommercial       = "UN"
	EANNone              = "SEM GTIN"
)

// Resolver determines the approximate embedded-tax percentage for a
// line item. The default is a flat rate; a real tax engine (CST/CSOSN
// selection, rate tables, inter-state rules) plugs in here.
type Resolver interface {
	ApproximateRate(item model.LineItem) decimal.Decimal
}

// defaultApproxRatePercent is the flat approximate embedded-tax
// percentage used when no external tax engine is plugged in.
var defaultApproxRatePercent = decimal.RequireFromString("16.33")

// FixedRateResolver applies one flat percentage to every line.
type FixedRateResolver struct {
	RatePercent decimal.Decimal
}

// NewFixedRateResolver creates a resolver with the given percentage.
func NewFixedRateResolver(ratePercent decimal.Decimal) *FixedRateResolver {
	return &FixedRateResolver{RatePercent: ratePercent}
}

// NewDefaultResolver creates the simplified flat-rate resolver.
func NewDefaultResolver() *FixedRateResolver {
	return NewFixedRateResolver(defaultApproxRatePercent)
}

// ApproximateRate returns the flat percentage regardless of the item.
func (r *FixedRateResolver) ApproximateRate(model.LineItem) decimal.Decimal {
	return r.RatePercent
}

// Line carries the computed figures of one encoded order line.
type Line struct {
	// Index is the 1-based position in the order; downstream systems
	// correlate items by it, so it must mirror input order.
	Index     int
	Item      model.LineItem
	LineTotal decimal.Decimal
	ApproxTax decimal.Decimal
}

// Encoder converts order lines into their item-block figures.
type Encoder struct {
	resolver Resolver
}

// NewEncoder creates an encoder backed by the given resolver.
func NewEncoder(r Resolver) *Encoder {
	if r == nil {
		r = NewDefaultResolver()
	}
	return &Encoder{resolver: r}
}

// Encode computes the figures for every line, preserving input order.
func (e *Encoder) Encode(items []model.LineItem) []Line {
	hundred := decimal.NewFromInt(100)
	lines := make([]Line, 0, len(items))
	for i, item := range items {
		total := item.LineTotal()
		rate := e.resolver.ApproximateRate(item)
		lines = append(lines, Line{
			Index:     i + 1,
			Item:      item,
			LineTotal: total,
			ApproxTax: total.Mul(rate).Div(hundred).Round(2),
		})
	}
	return lines
}
