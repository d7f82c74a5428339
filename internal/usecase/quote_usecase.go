package usecase

import (
	"context"
	"errors"
	"quickquote/internal/domain/entities"
	"quickquote/internal/domain/pricing"
	"quickquote/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// QuoteDraft is everything the provider fills in for a new quote.
type QuoteDraft struct {
	Windows  entities.WindowCounts
	Options  entities.QuoteOptions
	Customer entities.Customer
	Images   []PendingImage
}

// QuoteEdit carries the changed parts of a saved quote. Nil fields keep the
// stored value; NewImages are appended after upload.
type QuoteEdit struct {
	Windows   *entities.WindowCounts
	Options   *entities.QuoteOptions
	Customer  *entities.Customer
	NewImages []PendingImage
}

type IQuoteUseCase interface {
	Preview(ctx context.Context, windows entities.WindowCounts, opts entities.QuoteOptions) (pricing.Breakdown, error)
	Create(ctx context.Context, draft QuoteDraft) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context, search string, sortKey QuoteSortKey) ([]entities.Quote, error)
	Subscribe(ctx context.Context, onChange func([]entities.Quote)) (func(), error)
	Edit(ctx context.Context, id string, edit QuoteEdit) (entities.Quote, error)
	RemoveImage(ctx context.Context, id string, index int) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}

type QuoteUseCase struct {
	rates    interfaces.IRateCardRepository
	quotes   interfaces.IQuoteRepository
	blobs    interfaces.IBlobStore
	identity interfaces.IIdentityProvider
	log      zerolog.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	rates interfaces.IRateCardRepository,
	quotes interfaces.IQuoteRepository,
	blobs interfaces.IBlobStore,
	identity interfaces.IIdentityProvider,
	log zerolog.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{rates: rates, quotes: quotes, blobs: blobs, identity: identity, log: log}
}

func (u *QuoteUseCase) NewComposer() *QuoteComposer {
	return NewQuoteComposer(u.rates, u.quotes, u.blobs, u.identity, u.log)
}

func (u *QuoteUseCase) NewEditor() *QuoteEditor {
	return NewQuoteEditor(u.rates, u.quotes, u.blobs, u.identity, u.log)
}

// Preview prices inputs against the caller's rate card without saving anything.
func (u *QuoteUseCase) Preview(ctx context.Context, windows entities.WindowCounts, opts entities.QuoteOptions) (pricing.Breakdown, error) {
	if opts.DirtLevel == 0 {
		opts.DirtLevel = entities.DirtLevel1
	}
	if err := entities.ValidateQuoteInputs(windows, opts); err != nil {
		return pricing.Breakdown{}, err
	}
	providerID, err := actingProvider(ctx, u.identity)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	card, err := loadRateCard(ctx, u.rates, providerID)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	return pricing.Itemize(card, windows.Normalized(), opts), nil
}

func (u *QuoteUseCase) Create(ctx context.Context, draft QuoteDraft) (entities.Quote, error) {
	c := u.NewComposer()
	if err := c.Start(ctx); err != nil {
		return entities.Quote{}, err
	}
	if _, err := c.SetWindows(draft.Windows); err != nil {
		return entities.Quote{}, err
	}
	if _, err := c.SetOptions(draft.Options); err != nil {
		return entities.Quote{}, err
	}
	c.SetCustomer(draft.Customer)
	for _, img := range draft.Images {
		c.AddImage(img)
	}
	return c.Save(ctx)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	providerID, err := actingProvider(ctx, u.identity)
	if err != nil {
		return entities.Quote{}, err
	}
	q, err := u.quotes.GetByID(ctx, id)
	if errors.Is(err, interfaces.ErrDocumentNotFound) {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || q.ProviderID != providerID {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context, search string, sortKey QuoteSortKey) ([]entities.Quote, error) {
	providerID, err := actingProvider(ctx, u.identity)
	if err != nil {
		return nil, err
	}
	quotes, err := u.quotes.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return FilterAndSortQuotes(quotes, search, sortKey), nil
}

// Subscribe delivers the caller's full quote set now and on every change.
func (u *QuoteUseCase) Subscribe(ctx context.Context, onChange func([]entities.Quote)) (func(), error) {
	providerID, err := actingProvider(ctx, u.identity)
	if err != nil {
		return nil, err
	}
	return u.quotes.SubscribeByProvider(ctx, providerID, onChange)
}

func (u *QuoteUseCase) Edit(ctx context.Context, id string, edit QuoteEdit) (entities.Quote, error) {
	e := u.NewEditor()
	if err := e.Open(ctx, id); err != nil {
		return entities.Quote{}, err
	}
	if edit.Windows != nil {
		if _, err := e.SetWindows(*edit.Windows); err != nil {
			return entities.Quote{}, err
		}
	}
	if edit.Options != nil {
		if _, err := e.SetOptions(*edit.Options); err != nil {
			return entities.Quote{}, err
		}
	}
	if edit.Customer != nil {
		if err := e.SetCustomer(*edit.Customer); err != nil {
			return entities.Quote{}, err
		}
	}
	for _, img := range edit.NewImages {
		if err := e.AddImage(img); err != nil {
			return entities.Quote{}, err
		}
	}
	return e.Save(ctx)
}

func (u *QuoteUseCase) RemoveImage(ctx context.Context, id string, index int) (entities.Quote, error) {
	e := u.NewEditor()
	if err := e.Open(ctx, id); err != nil {
		return entities.Quote{}, err
	}
	if err := e.RemoveImage(index); err != nil {
		return entities.Quote{}, err
	}
	return e.Save(ctx)
}

// Delete removes a quote without loading the rate card, so quotes stay
// deletable after the card is gone.
func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.quotes.Delete(ctx, q.ID); err != nil {
		if errors.Is(err, interfaces.ErrDocumentNotFound) {
			return ErrQuoteNotFound
		}
		return err
	}
	u.log.Info().Str("quote_id", q.ID).Msg("[quotes][usecase] deleted")
	return nil
}
