package interfaces

import (
	"context"
	"quickquote/internal/domain/entities"
)

// IQuoteRepository persists Quote entities scoped by provider.
//
// The service must be able to:
//   - reserve a quote id before uploading attachments (NewID), then create the quote
//   - read one quote, list or live-subscribe to all quotes of a provider
//   - overwrite top-level fields of a quote (nested values replaced wholesale)
//   - delete a quote for good
//
// GetByID returns an empty Quote (ID == "") when the id does not exist.
// Update and Delete return ErrDocumentNotFound for unknown ids.

type IQuoteRepository interface {
	NewID() string
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByProvider(ctx context.Context, providerID string) ([]entities.Quote, error)
	SubscribeByProvider(ctx context.Context, providerID string, onChange func([]entities.Quote)) (unsubscribe func(), err error)
	Update(ctx context.Context, id string, update entities.QuoteUpdate) error
	Delete(ctx context.Context, id string) error
}
