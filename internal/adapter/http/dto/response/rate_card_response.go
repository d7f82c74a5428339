package response

import (
	"strconv"

	"quickquote/internal/domain/entities"
)

type RateCardResponse struct {
	ProviderID           string             `json:"providerId"`
	BaseRates            map[string]float64 `json:"baseRates"`
	InteriorPercentage   float64            `json:"interiorPercentage"`
	DirtLevelAdjustments map[string]float64 `json:"dirtLevelAdjustments"`
	AccessibilityCharge  float64            `json:"accessibilityCharge"`
	ContractDiscount     float64            `json:"contractDiscount"`
	ExtraCharge          float64            `json:"extraCharge"`
}

func FromRateCard(card entities.RateCard) RateCardResponse {
	card = card.Normalized()
	base := make(map[string]float64, len(card.BaseRates))
	for size, v := range card.BaseRates {
		base[string(size)] = v
	}
	dirt := make(map[string]float64, len(card.DirtLevelAdjustments))
	for lvl, v := range card.DirtLevelAdjustments {
		dirt[strconv.Itoa(int(lvl))] = v
	}
	return RateCardResponse{
		ProviderID:           card.ProviderID,
		BaseRates:            base,
		InteriorPercentage:   card.InteriorPercentage,
		DirtLevelAdjustments: dirt,
		AccessibilityCharge:  card.AccessibilityCharge,
		ContractDiscount:     card.ContractDiscount,
		ExtraCharge:          card.ExtraCharge,
	}
}
