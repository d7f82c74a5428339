package response

import (
	"testing"
	"time"

	"quickquote/internal/domain/entities"
	"quickquote/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestFromQuote(t *testing.T) {
	extra := 25.0
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	q := entities.Quote{
		ID:           "q1",
		ProviderID:   "p1",
		Windows:      entities.WindowCounts{entities.WindowSizeXS: 2},
		QuoteDetails: entities.QuoteOptions{DirtLevel: entities.DirtLevel2, ExtraCharge: &extra},
		FinalPrice:   36,
		Images:       []entities.QuoteImage{{ImageURL: "http://x/1.jpg", Comment: "front"}},
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	resp := FromQuote(q)
	assert.Equal(t, "q1", resp.ID)
	assert.Equal(t, 2, resp.Windows["XS"])
	assert.Equal(t, 0, resp.Windows["XL"])
	assert.Equal(t, 2, resp.QuoteDetails.DirtLevel)
	assert.Equal(t, 25.0, resp.QuoteDetails.ExtraCharge)
	assert.Equal(t, "Unknown", resp.Customer.DisplayName)
	assert.Len(t, resp.Images, 1)
	assert.Equal(t, created, resp.CreatedAt)
}

func TestFromQuotes_Empty(t *testing.T) {
	resp := FromQuotes(nil)
	assert.NotNil(t, resp.Quotes)
	assert.Equal(t, 0, resp.Count)
}

func TestFromRateCard(t *testing.T) {
	resp := FromRateCard(entities.RateCard{
		ProviderID:           "p1",
		BaseRates:            map[entities.WindowSize]float64{entities.WindowSizeXS: 5},
		DirtLevelAdjustments: map[entities.DirtLevel]float64{entities.DirtLevel3: 20},
	})
	assert.Equal(t, 5.0, resp.BaseRates["XS"])
	assert.Len(t, resp.BaseRates, 5)
	assert.Equal(t, 20.0, resp.DirtLevelAdjustments["3"])
	assert.Equal(t, 0.0, resp.DirtLevelAdjustments["1"])
}

func TestFromBreakdown(t *testing.T) {
	b := pricing.Breakdown{
		Lines: []pricing.Line{
			{Kind: pricing.LineBase, Size: entities.WindowSizeXS, Quantity: 3, UnitPrice: 1.1, Amount: 3.3000000000000003},
			{Kind: pricing.LineExtraCharge, Amount: 0},
		},
		Subtotal: 3.3000000000000003,
		Total:    3.3,
	}
	resp := FromBreakdown(b)
	assert.Equal(t, 3.3, resp.Lines[0].Amount)
	assert.Equal(t, "base", resp.Lines[0].Kind)
	assert.Equal(t, "XS", resp.Lines[0].Size)
	assert.Equal(t, 3.3, resp.Subtotal)
	assert.Equal(t, 3.3, resp.Total)
}
