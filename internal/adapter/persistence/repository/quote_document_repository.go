package repository

import (
	"context"
	"slices"
	"strings"

	"quickquote/internal/domain/entities"
	"quickquote/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

const providerField = "userId"

// QuoteDocumentRepository persists Quote entities in the "Quotes" collection.
//
// Every listing filters on userId. Results are re-checked against the
// provider after decoding and ordered by createdAt, keeping the store's order
// for equal timestamps.

type QuoteDocumentRepository struct {
	store interfaces.IDocumentStore
	log   zerolog.Logger
}

var _ interfaces.IQuoteRepository = (*QuoteDocumentRepository)(nil)

func NewQuoteDocumentRepository(store interfaces.IDocumentStore, log zerolog.Logger) *QuoteDocumentRepository {
	return &QuoteDocumentRepository{store: store, log: log}
}

func (r *QuoteDocumentRepository) NewID() string {
	return r.store.NewID(interfaces.CollectionQuotes)
}

func (r *QuoteDocumentRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if strings.TrimSpace(q.ProviderID) == "" {
		return entities.Quote{}, interfaces.ErrNoProvider
	}
	if q.ID == "" {
		q.ID = r.NewID()
	}
	if q.Images == nil {
		q.Images = []entities.QuoteImage{}
	}
	if err := r.store.Create(ctx, interfaces.CollectionQuotes, q.ID, q.ToDocument()); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDocumentRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	doc, err := r.store.Get(ctx, interfaces.CollectionQuotes, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if doc == nil {
		return entities.Quote{}, nil
	}
	return entities.QuoteFromDocument(id, doc), nil
}

func (r *QuoteDocumentRepository) ListByProvider(ctx context.Context, providerID string) ([]entities.Quote, error) {
	docs, err := r.store.Query(ctx, interfaces.CollectionQuotes, providerField, providerID)
	if err != nil {
		return nil, err
	}
	return r.decode(providerID, docs), nil
}

func (r *QuoteDocumentRepository) SubscribeByProvider(ctx context.Context, providerID string, onChange func([]entities.Quote)) (func(), error) {
	return r.store.Watch(ctx, interfaces.CollectionQuotes, providerField, providerID,
		func(docs []interfaces.Document) {
			onChange(r.decode(providerID, docs))
		},
		func(err error) {
			r.log.Warn().Err(err).Str("provider_id", providerID).Msg("[quotes][repository] subscription error")
		},
	)
}

func (r *QuoteDocumentRepository) Update(ctx context.Context, id string, update entities.QuoteUpdate) error {
	return r.store.Update(ctx, interfaces.CollectionQuotes, id, update.DocumentFields())
}

func (r *QuoteDocumentRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, interfaces.CollectionQuotes, id)
}

func (r *QuoteDocumentRepository) decode(providerID string, docs []interfaces.Document) []entities.Quote {
	out := make([]entities.Quote, 0, len(docs))
	for _, d := range docs {
		q := entities.QuoteFromDocument(d.ID, d.Data)
		if q.ProviderID != providerID {
			r.log.Warn().Str("quote_id", q.ID).Str("provider_id", providerID).Msg("[quotes][repository] foreign quote dropped")
			continue
		}
		out = append(out, q)
	}
	slices.SortStableFunc(out, func(a, b entities.Quote) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}
