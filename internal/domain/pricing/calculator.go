// Package pricing turns a rate card, window counts and quote options into a price.
//
// The computation is pure and total: it never fails and never validates. Callers
// reject negative inputs and out-of-range dirt tiers before calling it.
package pricing

import (
	"math"

	"quickquote/internal/domain/entities"
)

// LineKind identifies a breakdown line.
type LineKind string

const (
	LineBase          LineKind = "base"
	LineInterior      LineKind = "interior"
	LineDirtLevel     LineKind = "dirt_level"
	LineAccessibility LineKind = "accessibility"
	LineContract      LineKind = "contract_discount"
	LineExtraCharge   LineKind = "extra_charge"
)

// Line is one step of the computation. Amount is the change it made to the
// running total (negative for the contract discount).
type Line struct {
	Kind       LineKind            `json:"kind"`
	Size       entities.WindowSize `json:"size,omitempty"`
	Quantity   int                 `json:"quantity,omitempty"`
	UnitPrice  float64             `json:"unitPrice,omitempty"`
	Percentage float64             `json:"percentage,omitempty"`
	Amount     float64             `json:"amount"`
}

// Breakdown is the itemized computation. Amounts are unrounded; Total is rounded.
type Breakdown struct {
	Lines       []Line  `json:"lines"`
	Subtotal    float64 `json:"subtotal"`
	ExtraCharge float64 `json:"extraCharge"`
	Total       float64 `json:"total"`
}

// ComputeTotal returns the quote total rounded to cents.
//
// Adjustments compound in a fixed order: interior, dirt tier, accessibility,
// contract discount; the flat extra charge is added last. A contract discount of
// 100% or more is not clamped, so the total can drop to the extra charge or below.
func ComputeTotal(card entities.RateCard, windows entities.WindowCounts, opts entities.QuoteOptions) float64 {
	return Itemize(card, windows, opts).Total
}

// Itemize returns the full computation behind ComputeTotal.
func Itemize(card entities.RateCard, windows entities.WindowCounts, opts entities.QuoteOptions) Breakdown {
	var b Breakdown
	total := 0.0

	for _, size := range entities.WindowSizes {
		qty := windows[size]
		rate := card.BaseRates[size]
		if qty == 0 {
			continue
		}
		amount := float64(qty) * rate
		b.Lines = append(b.Lines, Line{Kind: LineBase, Size: size, Quantity: qty, UnitPrice: rate, Amount: amount})
		total += amount
	}

	applyPct := func(kind LineKind, pct float64, sign float64) {
		next := total * (1 + sign*pct/100)
		b.Lines = append(b.Lines, Line{Kind: kind, Percentage: pct, Amount: next - total})
		total = next
	}

	if opts.Interior {
		applyPct(LineInterior, card.InteriorPercentage, 1)
	}
	// an unknown tier has no entry and therefore no adjustment
	applyPct(LineDirtLevel, card.DirtLevelAdjustments[opts.DirtLevel], 1)
	if opts.IsAccessible {
		applyPct(LineAccessibility, card.AccessibilityCharge, 1)
	}
	if opts.HasContract {
		applyPct(LineContract, card.ContractDiscount, -1)
	}

	b.Subtotal = total
	b.ExtraCharge = ResolveExtraCharge(card, opts)
	b.Lines = append(b.Lines, Line{Kind: LineExtraCharge, Amount: b.ExtraCharge})
	b.Total = RoundCents(total + b.ExtraCharge)
	return b
}

// ResolveExtraCharge returns the quote's own extra charge when set, otherwise the card's.
func ResolveExtraCharge(card entities.RateCard, opts entities.QuoteOptions) float64 {
	if opts.ExtraCharge != nil {
		return *opts.ExtraCharge
	}
	return card.ExtraCharge
}

// RoundCents rounds half-up to two decimals. The value is first snapped to 1e-6
// cents so binary noise (33.000000000000004) does not decide the rounding.
func RoundCents(v float64) float64 {
	cents := math.Round(v*100*1e6) / 1e6
	return math.Floor(cents+0.5) / 100
}
