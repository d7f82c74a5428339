package entities

import (
	"strconv"
	"strings"
)

// WindowSize is a window-size tag. The priced set is closed (XS..XL); counts may
// carry other tags, which price at zero.
type WindowSize string

const (
	WindowSizeXS WindowSize = "XS"
	WindowSizeSM WindowSize = "SM"
	WindowSizeMD WindowSize = "MD"
	WindowSizeLG WindowSize = "LG"
	WindowSizeXL WindowSize = "XL"
)

// WindowSizes lists the priced sizes in display order.
var WindowSizes = []WindowSize{WindowSizeXS, WindowSizeSM, WindowSizeMD, WindowSizeLG, WindowSizeXL}

// DirtLevel is the dirt tier of a quote. Exactly one tier applies per quote.
type DirtLevel int

const (
	DirtLevel1 DirtLevel = 1
	DirtLevel2 DirtLevel = 2
	DirtLevel3 DirtLevel = 3
)

var DirtLevels = []DirtLevel{DirtLevel1, DirtLevel2, DirtLevel3}

func (d DirtLevel) Valid() bool {
	return d >= DirtLevel1 && d <= DirtLevel3
}

// documentKey is the key used for the tier inside persisted rate documents.
func (d DirtLevel) documentKey() string {
	return "level" + strconv.Itoa(int(d))
}

// RateCard is a provider's pricing configuration.
//
// Storage model: collection "Rates", document id = provider id. A card is
// overwritten wholesale on every save; there is no history.
//
// Percentages are expressed as 0..100 (50 means +50%). ExtraCharge is a flat amount.
type RateCard struct {
	ProviderID           string                 `json:"providerId"`
	BaseRates            map[WindowSize]float64 `json:"baseRates" validate:"dive,finite,gte=0"`
	InteriorPercentage   float64                `json:"interiorPercentage" validate:"finite,gte=0"`
	DirtLevelAdjustments map[DirtLevel]float64  `json:"dirtLevelAdjustments" validate:"dive,finite,gte=0"`
	AccessibilityCharge  float64                `json:"accessibilityCharge" validate:"finite,gte=0"`
	ContractDiscount     float64                `json:"contractDiscount" validate:"finite,gte=0"`
	ExtraCharge          float64                `json:"extraCharge" validate:"finite,gte=0"`
}

// Normalized returns a copy where every known size and tier has an entry.
// Missing entries become zero; unknown sizes are kept.
func (r RateCard) Normalized() RateCard {
	out := r
	out.BaseRates = make(map[WindowSize]float64, len(WindowSizes))
	for _, size := range WindowSizes {
		out.BaseRates[size] = 0
	}
	for size, v := range r.BaseRates {
		out.BaseRates[size] = v
	}
	out.DirtLevelAdjustments = make(map[DirtLevel]float64, len(DirtLevels))
	for _, lvl := range DirtLevels {
		out.DirtLevelAdjustments[lvl] = 0
	}
	for lvl, v := range r.DirtLevelAdjustments {
		out.DirtLevelAdjustments[lvl] = v
	}
	return out
}

// ToDocument encodes the card in the persisted "Rates" document shape.
// Dirt tiers are written with the level<N> keys used by existing documents.
func (r RateCard) ToDocument() map[string]any {
	n := r.Normalized()
	base := make(map[string]any, len(n.BaseRates))
	for size, v := range n.BaseRates {
		base[string(size)] = v
	}
	dirt := make(map[string]any, len(n.DirtLevelAdjustments))
	for lvl, v := range n.DirtLevelAdjustments {
		dirt[lvl.documentKey()] = v
	}
	return map[string]any{
		"baseRates":            base,
		"interiorPercentage":   n.InteriorPercentage,
		"dirtLevelAdjustments": dirt,
		"accessibilityCharge":  n.AccessibilityCharge,
		"contractDiscount":     n.ContractDiscount,
		"extraCharge":          n.ExtraCharge,
	}
}

// RateCardFromDocument builds a complete card from a possibly partial document.
//
// Absent fields, nulls and empty strings are zero. Numeric strings are accepted
// (older clients stored raw form text). Text that is not a number is reported as a
// field error; the remaining fields are still decoded. Unknown dirt tier keys are
// ignored.
func RateCardFromDocument(providerID string, doc map[string]any) (RateCard, error) {
	card := RateCard{ProviderID: providerID}
	var verr ValidationError

	card.BaseRates = map[WindowSize]float64{}
	for key, raw := range asMap(doc["baseRates"]) {
		size := WindowSize(strings.ToUpper(strings.TrimSpace(key)))
		v, err := numberValue(raw)
		if err != nil {
			verr.Add("baseRates["+string(size)+"]", err.Error())
			continue
		}
		card.BaseRates[size] = v
	}

	card.DirtLevelAdjustments = map[DirtLevel]float64{}
	for key, raw := range asMap(doc["dirtLevelAdjustments"]) {
		lvl, ok := ParseDirtLevelKey(key)
		if !ok {
			continue
		}
		v, err := numberValue(raw)
		if err != nil {
			verr.Add("dirtLevelAdjustments["+strconv.Itoa(int(lvl))+"]", err.Error())
			continue
		}
		card.DirtLevelAdjustments[lvl] = v
	}

	scalars := []struct {
		key string
		dst *float64
	}{
		{"interiorPercentage", &card.InteriorPercentage},
		{"accessibilityCharge", &card.AccessibilityCharge},
		{"contractDiscount", &card.ContractDiscount},
		{"extraCharge", &card.ExtraCharge},
	}
	for _, s := range scalars {
		v, err := numberValue(doc[s.key])
		if err != nil {
			verr.Add(s.key, err.Error())
			continue
		}
		*s.dst = v
	}

	card = card.Normalized()
	if verr.HasErrors() {
		return card, &verr
	}
	return card, nil
}

// ParseDirtLevelKey accepts "1" and the legacy "level1" forms.
func ParseDirtLevelKey(key string) (DirtLevel, bool) {
	key = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(key)), "level")
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	lvl := DirtLevel(n)
	return lvl, lvl.Valid()
}
