package usecase

import (
	"context"
	"errors"
	"fmt"
	"quickquote/internal/domain/entities"
	"quickquote/internal/domain/pricing"
	"quickquote/internal/usecase/interfaces"
	"sync"
	"sync/atomic"
	"time"

	"github.com/qmuntal/stateless"
	"github.com/rs/zerolog"
)

var (
	ErrComposerNotReady = errors.New("quote composer is not ready")
	ErrQuoteSaveFailed  = errors.New("quote save failed")
)

// ComposerState is the state of a quote-composition session.
type ComposerState string

const (
	ComposerLoadingRates ComposerState = "loading_rates"
	ComposerBlocked      ComposerState = "blocked"
	ComposerReady        ComposerState = "ready"
	ComposerCalculating  ComposerState = "calculating"
	ComposerSaving       ComposerState = "saving"
	ComposerSaved        ComposerState = "saved"
	ComposerSaveFailed   ComposerState = "save_failed"
)

const (
	triggerRatesLoaded   = "rates_loaded"
	triggerRatesMissing  = "rates_missing"
	triggerCalculate     = "calculate"
	triggerSave          = "save"
	triggerSaveSucceeded = "save_succeeded"
	triggerSaveFailed    = "save_failed"
)

// QuoteComposer drives one quote-creation session:
//
//	LoadingRates -> Ready -> Calculating -> Saving -> Saved | SaveFailed
//
// A provider without a rate card ends up in Blocked. Every input change
// recomputes the total; Save recomputes once more so the stored price always
// matches the stored inputs. A session is not meant for concurrent callers
// beyond Close, which may be called from anywhere.
type QuoteComposer struct {
	mu sync.Mutex

	rates    interfaces.IRateCardRepository
	quotes   interfaces.IQuoteRepository
	identity interfaces.IIdentityProvider
	uploader imageUploader
	log      zerolog.Logger
	now      func() time.Time

	machine *stateless.StateMachine
	closed  atomic.Bool

	providerID string
	card       entities.RateCard
	blockedBy  error

	windows  entities.WindowCounts
	options  entities.QuoteOptions
	customer entities.Customer
	images   []PendingImage
	total    float64
}

func NewQuoteComposer(
	rates interfaces.IRateCardRepository,
	quotes interfaces.IQuoteRepository,
	blobs interfaces.IBlobStore,
	identity interfaces.IIdentityProvider,
	log zerolog.Logger,
) *QuoteComposer {
	c := &QuoteComposer{
		rates:    rates,
		quotes:   quotes,
		identity: identity,
		log:      log,
		now:      time.Now,
	}
	c.uploader = imageUploader{blobs: blobs, now: func() time.Time { return c.now() }, log: log}
	c.machine = newComposerMachine()
	c.resetInputs()
	return c
}

func newComposerMachine() *stateless.StateMachine {
	m := stateless.NewStateMachine(ComposerLoadingRates)

	m.Configure(ComposerLoadingRates).
		Permit(triggerRatesLoaded, ComposerReady).
		Permit(triggerRatesMissing, ComposerBlocked)

	m.Configure(ComposerReady).
		Permit(triggerCalculate, ComposerCalculating)

	m.Configure(ComposerCalculating).
		PermitReentry(triggerCalculate).
		Permit(triggerSave, ComposerSaving)

	m.Configure(ComposerSaving).
		Permit(triggerSaveSucceeded, ComposerSaved).
		Permit(triggerSaveFailed, ComposerSaveFailed)

	m.Configure(ComposerSaved).
		Permit(triggerCalculate, ComposerCalculating)

	m.Configure(ComposerSaveFailed).
		Permit(triggerCalculate, ComposerCalculating).
		Permit(triggerSave, ComposerSaving)

	return m
}

// Start loads the caller's rate card. A missing card blocks the session and
// returns ErrRateCardNotConfigured; any other failure leaves the session in
// LoadingRates so Start can be retried.
func (c *QuoteComposer) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state() != ComposerLoadingRates {
		return ErrComposerNotReady
	}

	providerID, err := actingProvider(ctx, c.identity)
	if err == nil {
		c.providerID = providerID
		c.card, err = loadRateCard(ctx, c.rates, providerID)
	}
	if c.closed.Load() {
		return err
	}

	switch {
	case err == nil:
		if fireErr := c.machine.Fire(triggerRatesLoaded); fireErr != nil {
			return fireErr
		}
		c.total = pricing.ComputeTotal(c.card, c.windows, c.options)
		return nil
	case errors.Is(err, ErrRateCardNotConfigured), errors.Is(err, interfaces.ErrNoProvider):
		c.blockedBy = err
		c.log.Info().Err(err).Str("provider_id", c.providerID).Msg("[quotes][composer] blocked")
		if fireErr := c.machine.Fire(triggerRatesMissing); fireErr != nil {
			return fireErr
		}
		return err
	default:
		c.log.Error().Err(err).Msg("[quotes][composer] rate card load failed")
		return err
	}
}

func (c *QuoteComposer) State() ComposerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state()
}

// BlockedReason is the error that moved the session to Blocked, if any.
func (c *QuoteComposer) BlockedReason() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.blockedBy
}

func (c *QuoteComposer) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// SetWindowCount changes one size and returns the new total. Invalid input is
// rejected and leaves the form unchanged.
func (c *QuoteComposer) SetWindowCount(size entities.WindowSize, count int) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.windows.Normalized()
	next[size] = count
	return c.apply(next, c.options)
}

func (c *QuoteComposer) SetWindows(windows entities.WindowCounts) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(windows.Normalized(), c.options)
}

func (c *QuoteComposer) SetOptions(opts entities.QuoteOptions) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if opts.DirtLevel == 0 {
		opts.DirtLevel = entities.DirtLevel1
	}
	return c.apply(c.windows, opts)
}

func (c *QuoteComposer) SetCustomer(customer entities.Customer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customer = customer
}

func (c *QuoteComposer) AddImage(img PendingImage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images = append(c.images, img)
}

// Breakdown itemizes the current total.
func (c *QuoteComposer) Breakdown() (pricing.Breakdown, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.priced() {
		return pricing.Breakdown{}, c.notReady()
	}
	return pricing.Itemize(c.card, c.windows, c.options), nil
}

// Save prices the current inputs, uploads pending images and stores the quote.
// On success the form is cleared; on failure it is kept so the provider can retry.
func (c *QuoteComposer) Save(ctx context.Context) (entities.Quote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.priced() {
		return entities.Quote{}, c.notReady()
	}
	if err := entities.ValidateQuoteInputs(c.windows, c.options); err != nil {
		return entities.Quote{}, err
	}
	if c.state() != ComposerSaveFailed {
		c.recalculate()
	}
	if err := c.machine.Fire(triggerSave); err != nil {
		return entities.Quote{}, ErrComposerNotReady
	}

	details := c.options
	extra := pricing.ResolveExtraCharge(c.card, details)
	details.ExtraCharge = &extra
	total := pricing.ComputeTotal(c.card, c.windows, details)
	c.total = total

	quoteID := c.quotes.NewID()
	images, handles, err := c.uploader.upload(ctx, c.providerID, quoteID, c.images)
	if err != nil {
		c.settle(triggerSaveFailed)
		return entities.Quote{}, err
	}

	now := c.now().UTC()
	created, err := c.quotes.Create(ctx, entities.Quote{
		ID:           quoteID,
		ProviderID:   c.providerID,
		Windows:      c.windows.Normalized(),
		QuoteDetails: details,
		FinalPrice:   total,
		Customer:     c.customer,
		Images:       images,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		c.log.Error().Err(err).Str("quote_id", quoteID).Msg("[quotes][composer] create failed")
		c.uploader.release(ctx, quoteID, handles)
		c.settle(triggerSaveFailed)
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrQuoteSaveFailed, err)
	}

	c.log.Info().Str("quote_id", created.ID).Float64("final_price", created.FinalPrice).Msg("[quotes][composer] saved")
	if c.settle(triggerSaveSucceeded) {
		c.resetInputs()
	}
	return created, nil
}

// Close detaches the session from its view. Work already in flight still
// finishes, but its outcome no longer changes the session.
func (c *QuoteComposer) Close() {
	c.closed.Store(true)
}

func (c *QuoteComposer) apply(windows entities.WindowCounts, opts entities.QuoteOptions) (float64, error) {
	if !c.priced() {
		return 0, c.notReady()
	}
	if err := entities.ValidateQuoteInputs(windows, opts); err != nil {
		return c.total, err
	}
	c.windows = windows
	c.options = opts
	c.recalculate()
	return c.total, nil
}

func (c *QuoteComposer) recalculate() {
	if err := c.machine.Fire(triggerCalculate); err != nil {
		c.log.Debug().Err(err).Msg("[quotes][composer] calculate not permitted")
		return
	}
	c.total = pricing.ComputeTotal(c.card, c.windows, c.options)
}

// settle records the outcome of an asynchronous step unless the session was closed.
func (c *QuoteComposer) settle(trigger string) bool {
	if c.closed.Load() {
		c.log.Debug().Str("trigger", trigger).Msg("[quotes][composer] session closed, outcome dropped")
		return false
	}
	if err := c.machine.Fire(trigger); err != nil {
		c.log.Warn().Err(err).Str("trigger", trigger).Msg("[quotes][composer] transition rejected")
		return false
	}
	return true
}

func (c *QuoteComposer) resetInputs() {
	c.windows = entities.WindowCounts{}.Normalized()
	c.options = entities.DefaultQuoteOptions()
	c.customer = entities.Customer{}
	c.images = nil
	if c.card.ProviderID != "" {
		c.total = pricing.ComputeTotal(c.card, c.windows, c.options)
	} else {
		c.total = 0
	}
}

func (c *QuoteComposer) priced() bool {
	switch c.state() {
	case ComposerLoadingRates, ComposerBlocked, ComposerSaving:
		return false
	}
	return true
}

func (c *QuoteComposer) notReady() error {
	if c.blockedBy != nil {
		return c.blockedBy
	}
	return ErrComposerNotReady
}

func (c *QuoteComposer) state() ComposerState {
	return c.machine.MustState().(ComposerState)
}
