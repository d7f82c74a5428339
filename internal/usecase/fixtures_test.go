package usecase

import (
	"quickquote/internal/domain/entities"
	mock_interfaces "quickquote/internal/usecase/interfaces/mocks"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func residentialCard(providerID string) entities.RateCard {
	return entities.RateCard{
		ProviderID: providerID,
		BaseRates: map[entities.WindowSize]float64{
			entities.WindowSizeXS: 5, entities.WindowSizeSM: 10, entities.WindowSizeMD: 15,
			entities.WindowSizeLG: 20, entities.WindowSizeXL: 30,
		},
		InteriorPercentage:   50,
		DirtLevelAdjustments: map[entities.DirtLevel]float64{1: 5, 2: 10, 3: 20},
		AccessibilityCharge:  10,
		ContractDiscount:     10,
		ExtraCharge:          25,
	}
}

type deps struct {
	rates    *mock_interfaces.MockIRateCardRepository
	quotes   *mock_interfaces.MockIQuoteRepository
	blobs    *mock_interfaces.MockIBlobStore
	identity *mock_interfaces.MockIIdentityProvider
}

func newDeps(t *testing.T) deps {
	t.Helper()
	ctrl := gomock.NewController(t)
	return deps{
		rates:    mock_interfaces.NewMockIRateCardRepository(ctrl),
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		blobs:    mock_interfaces.NewMockIBlobStore(ctrl),
		identity: mock_interfaces.NewMockIIdentityProvider(ctrl),
	}
}

func (d deps) actingAs(providerID string) {
	d.identity.EXPECT().ProviderID(gomock.Any()).Return(providerID, nil).AnyTimes()
}

func (d deps) composer() *QuoteComposer {
	c := NewQuoteComposer(d.rates, d.quotes, d.blobs, d.identity, zerolog.Nop())
	c.now = func() time.Time { return fixedNow }
	return c
}

func (d deps) editor() *QuoteEditor {
	e := NewQuoteEditor(d.rates, d.quotes, d.blobs, d.identity, zerolog.Nop())
	e.now = func() time.Time { return fixedNow }
	return e
}

func floatPtr(v float64) *float64 { return &v }
