package request

import (
	"quickquote/internal/domain/entities"
)

// RateCardRequest is the rates form as submitted. Values may be numbers or
// numeric strings; dirt tiers may be keyed "1".."3" or "level1".."level3".
type RateCardRequest struct {
	BaseRates            map[string]any `json:"baseRates"`
	InteriorPercentage   any            `json:"interiorPercentage"`
	DirtLevelAdjustments map[string]any `json:"dirtLevelAdjustments"`
	AccessibilityCharge  any            `json:"accessibilityCharge"`
	ContractDiscount     any            `json:"contractDiscount"`
	ExtraCharge          any            `json:"extraCharge"`
}

// ToRateCard decodes the form with the same rules used for stored documents and
// checks the amounts. Every bad field is reported in one *entities.ValidationError:
// non-numeric text, negative or non-finite amounts and unknown dirt tier keys.
func (r RateCardRequest) ToRateCard() (entities.RateCard, error) {
	var keys entities.ValidationError
	for key := range r.DirtLevelAdjustments {
		if _, ok := entities.ParseDirtLevelKey(key); !ok {
			keys.Add("dirtLevelAdjustments["+key+"]", "must be a dirt level from 1 to 3")
		}
	}

	doc := map[string]any{
		"interiorPercentage":  r.InteriorPercentage,
		"accessibilityCharge": r.AccessibilityCharge,
		"contractDiscount":    r.ContractDiscount,
		"extraCharge":         r.ExtraCharge,
	}
	if r.BaseRates != nil {
		doc["baseRates"] = r.BaseRates
	}
	if r.DirtLevelAdjustments != nil {
		doc["dirtLevelAdjustments"] = r.DirtLevelAdjustments
	}
	card, err := entities.RateCardFromDocument("", doc)
	return card, entities.MergeValidationErrors(err, &keys, entities.ValidateRateCardAmounts(card))
}
