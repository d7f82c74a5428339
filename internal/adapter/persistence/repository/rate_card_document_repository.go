package repository

import (
	"context"
	"fmt"

	"quickquote/internal/domain/entities"
	"quickquote/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// RateCardDocumentRepository persists RateCard entities in the "Rates" collection.
//
// Document id = provider id, so a provider has at most one card and reading
// it never needs a query.

type RateCardDocumentRepository struct {
	store interfaces.IDocumentStore
	log   zerolog.Logger
}

var _ interfaces.IRateCardRepository = (*RateCardDocumentRepository)(nil)

func NewRateCardDocumentRepository(store interfaces.IDocumentStore, log zerolog.Logger) *RateCardDocumentRepository {
	return &RateCardDocumentRepository{store: store, log: log}
}

func (r *RateCardDocumentRepository) Load(ctx context.Context, providerID string) (entities.RateCard, error) {
	doc, err := r.store.Get(ctx, interfaces.CollectionRates, providerID)
	if err != nil {
		return entities.RateCard{}, err
	}
	if doc == nil {
		return entities.RateCard{}, nil
	}

	card, err := entities.RateCardFromDocument(providerID, doc)
	if err != nil {
		// a stored card the engine cannot read is a data problem, not caller input
		r.log.Error().Err(err).Str("provider_id", providerID).Msg("[rates][repository] unreadable rate card")
		return entities.RateCard{}, fmt.Errorf("decode rate card %s: %v", providerID, err)
	}
	return card, nil
}

func (r *RateCardDocumentRepository) Save(ctx context.Context, card entities.RateCard) error {
	return r.store.Set(ctx, interfaces.CollectionRates, card.ProviderID, card.ToDocument())
}
