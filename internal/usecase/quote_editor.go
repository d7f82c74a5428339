package usecase

import (
	"context"
	"errors"
	"fmt"
	"quickquote/internal/domain/entities"
	"quickquote/internal/domain/pricing"
	"quickquote/internal/usecase/interfaces"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrEditorNotOpen        = errors.New("quote editor is not open")
	ErrImageIndexOutOfRange = errors.New("image index out of range")
)

// QuoteEditor edits one saved quote. Every input change recomputes the total
// against the provider's current rate card, and Save overwrites the stored
// fields with the edited values and the fresh total.
type QuoteEditor struct {
	mu sync.Mutex

	rates    interfaces.IRateCardRepository
	quotes   interfaces.IQuoteRepository
	identity interfaces.IIdentityProvider
	uploader imageUploader
	log      zerolog.Logger
	now      func() time.Time

	open     bool
	original entities.Quote
	card     entities.RateCard

	windows   entities.WindowCounts
	options   entities.QuoteOptions
	customer  entities.Customer
	images    []entities.QuoteImage
	newImages []PendingImage
	total     float64
}

func NewQuoteEditor(
	rates interfaces.IRateCardRepository,
	quotes interfaces.IQuoteRepository,
	blobs interfaces.IBlobStore,
	identity interfaces.IIdentityProvider,
	log zerolog.Logger,
) *QuoteEditor {
	e := &QuoteEditor{
		rates:    rates,
		quotes:   quotes,
		identity: identity,
		log:      log,
		now:      time.Now,
	}
	e.uploader = imageUploader{blobs: blobs, now: func() time.Time { return e.now() }, log: log}
	return e
}

// Open loads the quote and the caller's rate card in parallel. A quote owned by
// another provider is reported as ErrQuoteNotFound.
func (e *QuoteEditor) Open(ctx context.Context, quoteID string) error {
	providerID, err := actingProvider(ctx, e.identity)
	if err != nil {
		return err
	}

	var (
		quote entities.Quote
		card  entities.RateCard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := e.quotes.GetByID(gctx, quoteID)
		if errors.Is(err, interfaces.ErrDocumentNotFound) {
			return ErrQuoteNotFound
		}
		if err != nil {
			return err
		}
		if q.ID == "" || q.ProviderID != providerID {
			return ErrQuoteNotFound
		}
		quote = q
		return nil
	})
	g.Go(func() error {
		c, err := loadRateCard(gctx, e.rates, providerID)
		if err != nil {
			return err
		}
		card = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = true
	e.original = quote
	e.card = card
	e.windows = quote.Windows.Normalized()
	e.options = quote.QuoteDetails
	if e.options.DirtLevel == 0 {
		e.options.DirtLevel = entities.DirtLevel1
	}
	e.customer = quote.Customer
	e.images = append([]entities.QuoteImage{}, quote.Images...)
	e.newImages = nil
	e.total = pricing.ComputeTotal(e.card, e.windows, e.options)
	return nil
}

// Quote returns the form as a quote carrying the current total.
func (e *QuoteEditor) Quote() entities.Quote {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft()
}

func (e *QuoteEditor) Total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.total
}

func (e *QuoteEditor) SetWindowCount(size entities.WindowSize, count int) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.windows.Normalized()
	next[size] = count
	return e.apply(next, e.options)
}

func (e *QuoteEditor) SetWindows(windows entities.WindowCounts) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.apply(windows.Normalized(), e.options)
}

func (e *QuoteEditor) SetOptions(opts entities.QuoteOptions) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if opts.DirtLevel == 0 {
		opts.DirtLevel = entities.DirtLevel1
	}
	return e.apply(e.windows, opts)
}

func (e *QuoteEditor) SetCustomer(customer entities.Customer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrEditorNotOpen
	}
	e.customer = customer
	return nil
}

func (e *QuoteEditor) AddImage(img PendingImage) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrEditorNotOpen
	}
	e.newImages = append(e.newImages, img)
	return nil
}

// RemoveImage drops a saved attachment from the form. The blob itself is left
// in place; it stops being referenced once the quote is saved.
func (e *QuoteEditor) RemoveImage(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrEditorNotOpen
	}
	if index < 0 || index >= len(e.images) {
		return ErrImageIndexOutOfRange
	}
	e.images = append(e.images[:index:index], e.images[index+1:]...)
	return nil
}

// Save uploads new attachments and overwrites the stored quote with the form.
func (e *QuoteEditor) Save(ctx context.Context) (entities.Quote, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return entities.Quote{}, ErrEditorNotOpen
	}
	if err := entities.ValidateQuoteInputs(e.windows, e.options); err != nil {
		return entities.Quote{}, err
	}

	uploaded, handles, err := e.uploader.upload(ctx, e.original.ProviderID, e.original.ID, e.newImages)
	if err != nil {
		return entities.Quote{}, err
	}

	q := e.draft()
	q.Images = append(q.Images, uploaded...)
	q.UpdatedAt = e.now().UTC()

	if err := e.quotes.Update(ctx, q.ID, entities.FullQuoteUpdate(q)); err != nil {
		e.uploader.release(ctx, q.ID, handles)
		if errors.Is(err, interfaces.ErrDocumentNotFound) {
			return entities.Quote{}, ErrQuoteNotFound
		}
		e.log.Error().Err(err).Str("quote_id", q.ID).Msg("[quotes][editor] update failed")
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrQuoteSaveFailed, err)
	}

	e.original = q
	e.images = q.Images
	e.newImages = nil
	e.log.Info().Str("quote_id", q.ID).Float64("final_price", q.FinalPrice).Msg("[quotes][editor] updated")
	return q, nil
}

// Delete removes the open quote.
func (e *QuoteEditor) Delete(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrEditorNotOpen
	}
	if err := e.quotes.Delete(ctx, e.original.ID); err != nil {
		if errors.Is(err, interfaces.ErrDocumentNotFound) {
			return ErrQuoteNotFound
		}
		return err
	}
	e.open = false
	e.log.Info().Str("quote_id", e.original.ID).Msg("[quotes][editor] deleted")
	return nil
}

func (e *QuoteEditor) apply(windows entities.WindowCounts, opts entities.QuoteOptions) (float64, error) {
	if !e.open {
		return 0, ErrEditorNotOpen
	}
	if err := entities.ValidateQuoteInputs(windows, opts); err != nil {
		return e.total, err
	}
	e.windows = windows
	e.options = opts
	e.total = pricing.ComputeTotal(e.card, e.windows, e.options)
	return e.total, nil
}

func (e *QuoteEditor) draft() entities.Quote {
	q := e.original
	q.Windows = e.windows.Normalized()
	details := e.options
	extra := pricing.ResolveExtraCharge(e.card, details)
	details.ExtraCharge = &extra
	q.QuoteDetails = details
	q.FinalPrice = pricing.ComputeTotal(e.card, q.Windows, details)
	q.Customer = e.customer
	q.Images = append([]entities.QuoteImage{}, e.images...)
	return q
}
