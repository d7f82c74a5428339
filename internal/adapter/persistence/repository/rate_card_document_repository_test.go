package repository

import (
	"context"
	"errors"
	"testing"

	"quickquote/internal/adapter/persistence/docstore"
	"quickquote/internal/domain/entities"
	"quickquote/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

func TestRateCardDocumentRepository(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore(nil, zerolog.Nop())
	repo := NewRateCardDocumentRepository(store, zerolog.Nop())

	t.Run("missing card", func(t *testing.T) {
		card, err := repo.Load(ctx, "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.ProviderID != "" {
			t.Fatalf("expected empty card, got %+v", card)
		}
	})

	t.Run("save then load", func(t *testing.T) {
		in := entities.RateCard{
			ProviderID:           "p1",
			BaseRates:            map[entities.WindowSize]float64{entities.WindowSizeXS: 5},
			DirtLevelAdjustments: map[entities.DirtLevel]float64{2: 10},
			ExtraCharge:          25,
		}
		if err := repo.Save(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		card, err := repo.Load(ctx, "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.ProviderID != "p1" || card.BaseRates[entities.WindowSizeXS] != 5 || card.DirtLevelAdjustments[2] != 10 || card.ExtraCharge != 25 {
			t.Fatalf("unexpected card: %+v", card)
		}
		if card.BaseRates[entities.WindowSizeXL] != 0 {
			t.Fatalf("expected normalized card, got %+v", card.BaseRates)
		}
	})

	t.Run("legacy partial document", func(t *testing.T) {
		if err := store.Set(ctx, interfaces.CollectionRates, "p2", map[string]any{"baseRates": map[string]any{"SM": "10"}}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		card, err := repo.Load(ctx, "p2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.BaseRates[entities.WindowSizeSM] != 10 || card.InteriorPercentage != 0 {
			t.Fatalf("unexpected card: %+v", card)
		}
	})

	t.Run("unreadable document", func(t *testing.T) {
		if err := store.Set(ctx, interfaces.CollectionRates, "p3", map[string]any{"extraCharge": "lots"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Load(ctx, "p3")
		if err == nil {
			t.Fatalf("expected decode error")
		}
		var verr *entities.ValidationError
		if errors.As(err, &verr) {
			t.Fatalf("decode error must not look like caller input: %v", err)
		}
	})
}
