package interfaces

import (
	"context"
	"quickquote/internal/domain/entities"
)

// IRateCardRepository persists one RateCard per provider.
//
// Load returns an empty RateCard (ProviderID == "") when the provider has not
// configured rates yet. Save overwrites the stored card; last writer wins.

type IRateCardRepository interface {
	Load(ctx context.Context, providerID string) (entities.RateCard, error)
	Save(ctx context.Context, card entities.RateCard) error
}
