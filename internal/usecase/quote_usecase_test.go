package usecase

import (
	"context"
	"errors"
	"fmt"
	"quickquote/internal/domain/entities"
	"quickquote/internal/domain/pricing"
	"quickquote/internal/usecase/interfaces"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func (d deps) quoteUseCase() *QuoteUseCase {
	return NewQuoteUseCase(d.rates, d.quotes, d.blobs, d.identity, zerolog.Nop())
}

func TestQuoteUseCase_Preview(t *testing.T) {
	t.Run("scenario pricing", func(t *testing.T) {
		d := newDeps(t)
		d.actingAs("p1")
		d.rates.EXPECT().Load(gomock.Any(), "p1").Return(residentialCard("p1"), nil)

		windows, opts := scenarioOneInputs()
		b, err := d.quoteUseCase().Preview(context.Background(), windows, opts)
		require.NoError(t, err)
		assert.Equal(t, 58.0, b.Total)
		assert.Equal(t, pricing.LineExtraCharge, b.Lines[len(b.Lines)-1].Kind)
	})

	t.Run("explicit zero extra charge", func(t *testing.T) {
		d := newDeps(t)
		d.actingAs("p1")
		d.rates.EXPECT().Load(gomock.Any(), "p1").Return(residentialCard("p1"), nil)

		b, err := d.quoteUseCase().Preview(context.Background(), entities.WindowCounts{},
			entities.QuoteOptions{DirtLevel: entities.DirtLevel1, ExtraCharge: floatPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, 0.0, b.Total)
	})

	t.Run("invalid inputs never reach the store", func(t *testing.T) {
		d := newDeps(t)
		_, err := d.quoteUseCase().Preview(context.Background(), entities.WindowCounts{"XS": -1},
			entities.QuoteOptions{DirtLevel: 5})
		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 2)
	})
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("prices and stores the draft", func(t *testing.T) {
		d := newDeps(t)
		d.actingAs("p1")
		d.rates.EXPECT().Load(gomock.Any(), "p1").Return(residentialCard("p1"), nil)
		d.quotes.EXPECT().NewID().Return("q1")
		d.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		windows, opts := scenarioOneInputs()
		q, err := d.quoteUseCase().Create(context.Background(), QuoteDraft{
			Windows:  windows,
			Options:  opts,
			Customer: entities.Customer{Name: "Ann"},
		})
		require.NoError(t, err)
		assert.Equal(t, 58.0, q.FinalPrice)
		assert.Equal(t, "p1", q.ProviderID)
	})

	t.Run("rates not configured", func(t *testing.T) {
		d := newDeps(t)
		d.actingAs("p1")
		d.rates.EXPECT().Load(gomock.Any(), "p1").Return(entities.RateCard{}, nil)

		_, err := d.quoteUseCase().Create(context.Background(), QuoteDraft{})
		assert.ErrorIs(t, err, ErrRateCardNotConfigured)
	})

	t.Run("invalid dirt level", func(t *testing.T) {
		d := newDeps(t)
		d.actingAs("p1")
		d.rates.EXPECT().Load(gomock.Any(), "p1").Return(residentialCard("p1"), nil)

		_, err := d.quoteUseCase().Create(context.Background(), QuoteDraft{Options: entities.QuoteOptions{DirtLevel: 4}})
		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.FieldMap(), "dirtLevel")
	})
}

func TestQuoteUseCase_GetByIDScopesToProvider(t *testing.T) {
	d := newDeps(t)
	d.actingAs("p2")
	d.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(savedScenarioOneQuote(), nil)
	d.quotes.EXPECT().GetByID(gomock.Any(), "q2").Return(entities.Quote{}, nil)

	uc := d.quoteUseCase()
	_, err := uc.GetByID(context.Background(), "q1")
	assert.ErrorIs(t, err, ErrQuoteNotFound)
	_, err = uc.GetByID(context.Background(), "q2")
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestQuoteUseCase_List(t *testing.T) {
	d := newDeps(t)
	d.actingAs("p1")
	d.quotes.EXPECT().ListByProvider(gomock.Any(), "p1").Return(listingFixture(), nil)

	got, err := d.quoteUseCase().List(context.Background(), "mar", SortByPrice)
	require.NoError(t, err)
	assert.Equal(t, "bda", ids(got))
}

func TestQuoteUseCase_Subscribe(t *testing.T) {
	d := newDeps(t)
	d.actingAs("p1")
	stopped := false
	d.quotes.EXPECT().SubscribeByProvider(gomock.Any(), "p1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, onChange func([]entities.Quote)) (func(), error) {
			onChange(listingFixture())
			return func() { stopped = true }, nil
		},
	)

	feed, err := NewQuoteFeed(context.Background(), d.quoteUseCase().Subscribe)
	require.NoError(t, err)
	current, ready := feed.Current()
	assert.True(t, ready)
	assert.Len(t, current, 4)
	feed.Close()
	assert.True(t, stopped)
}

func TestQuoteUseCase_Edit(t *testing.T) {
	d := newDeps(t)
	d.actingAs("p1")
	d.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(savedScenarioOneQuote(), nil)
	d.rates.EXPECT().Load(gomock.Any(), "p1").Return(residentialCard("p1"), nil)
	d.quotes.EXPECT().Update(gomock.Any(), "q1", gomock.Any()).Return(nil)

	customer := entities.Customer{Name: "Ann B."}
	windows := entities.WindowCounts{entities.WindowSizeXL: 1}
	q, err := d.quoteUseCase().Edit(context.Background(), "q1", QuoteEdit{Windows: &windows, Customer: &customer})
	require.NoError(t, err)
	// 30 * 1.5 * 1.1 = 49.5 + 25
	assert.Equal(t, 74.5, q.FinalPrice)
	assert.Equal(t, "Ann B.", q.Customer.Name)
}

func TestQuoteUseCase_RemoveImage(t *testing.T) {
	d := newDeps(t)
	d.actingAs("p1")
	d.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(savedScenarioOneQuote(), nil)
	d.rates.EXPECT().Load(gomock.Any(), "p1").Return(residentialCard("p1"), nil)
	d.quotes.EXPECT().Update(gomock.Any(), "q1", gomock.Any()).Return(nil)

	q, err := d.quoteUseCase().RemoveImage(context.Background(), "q1", 1)
	require.NoError(t, err)
	require.Len(t, q.Images, 1)
	assert.Equal(t, "https://blobs/a.jpg", q.Images[0].ImageURL)
}

func TestQuoteUseCase_Delete(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		d := newDeps(t)
		d.actingAs("p1")
		d.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(savedScenarioOneQuote(), nil)
		d.quotes.EXPECT().Delete(gomock.Any(), "q1").Return(nil)
		require.NoError(t, d.quoteUseCase().Delete(context.Background(), "q1"))
	})

	t.Run("not the owner", func(t *testing.T) {
		d := newDeps(t)
		d.actingAs("p2")
		d.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(savedScenarioOneQuote(), nil)
		assert.ErrorIs(t, d.quoteUseCase().Delete(context.Background(), "q1"), ErrQuoteNotFound)
	})

	t.Run("repo error", func(t *testing.T) {
		d := newDeps(t)
		d.actingAs("p1")
		d.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(savedScenarioOneQuote(), nil)
		d.quotes.EXPECT().Delete(gomock.Any(), "q1").Return(errors.New("db"))
		err := d.quoteUseCase().Delete(context.Background(), "q1")
		assert.EqualError(t, err, "db")
	})

	t.Run("no provider", func(t *testing.T) {
		d := newDeps(t)
		d.identity.EXPECT().ProviderID(gomock.Any()).Return("", interfaces.ErrNoProvider)
		assert.ErrorIs(t, d.quoteUseCase().Delete(context.Background(), "q1"), interfaces.ErrNoProvider)
	})
}

// documentQuotes keeps quotes as stored documents so reads go through the same
// decoding as the real backends.
type documentQuotes struct {
	mu   sync.Mutex
	seq  int
	docs map[string]map[string]any
}

var _ interfaces.IQuoteRepository = (*documentQuotes)(nil)

func newDocumentQuotes() *documentQuotes {
	return &documentQuotes{docs: map[string]map[string]any{}}
}

func (r *documentQuotes) NewID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("q%d", r.seq)
}

func (r *documentQuotes) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[q.ID] = q.ToDocument()
	return q, nil
}

func (r *documentQuotes) GetByID(_ context.Context, id string) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return entities.Quote{}, nil
	}
	return entities.QuoteFromDocument(id, doc), nil
}

func (r *documentQuotes) ListByProvider(ctx context.Context, providerID string) ([]entities.Quote, error) {
	r.mu.Lock()
	ids := make([]string, 0, len(r.docs))
	for id := range r.docs {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	var out []entities.Quote
	for _, id := range ids {
		q, _ := r.GetByID(ctx, id)
		if q.ProviderID == providerID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *documentQuotes) SubscribeByProvider(context.Context, string, func([]entities.Quote)) (func(), error) {
	return func() {}, nil
}

func (r *documentQuotes) Update(_ context.Context, id string, update entities.QuoteUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return interfaces.ErrDocumentNotFound
	}
	for k, v := range update.DocumentFields() {
		doc[k] = v
	}
	return nil
}

func (r *documentQuotes) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return interfaces.ErrDocumentNotFound
	}
	delete(r.docs, id)
	return nil
}

func TestQuoteUseCase_CreatedQuoteSurvivesUnchangedEdit(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	d.actingAs("p1")
	card := residentialCard("p1")
	card.InteriorPercentage = 33.3
	card.ContractDiscount = 7.5
	card.ExtraCharge = 12.35
	d.rates.EXPECT().Load(gomock.Any(), "p1").Return(card, nil).AnyTimes()

	store := newDocumentQuotes()
	uc := NewQuoteUseCase(d.rates, store, d.blobs, d.identity, zerolog.Nop())

	created, err := uc.Create(ctx, QuoteDraft{
		Windows: entities.WindowCounts{entities.WindowSizeXS: 3, entities.WindowSizeMD: 2, entities.WindowSizeXL: 1},
		Options: entities.QuoteOptions{
			Interior:     true,
			DirtLevel:    entities.DirtLevel3,
			IsAccessible: true,
			HasContract:  true,
		},
		Customer: entities.Customer{Name: "Ann"},
	})
	require.NoError(t, err)

	edited, err := uc.Edit(ctx, created.ID, QuoteEdit{})
	require.NoError(t, err)
	assert.Equal(t, created.FinalPrice, edited.FinalPrice)

	stored, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.FinalPrice, stored.FinalPrice)
	if diff := cmp.Diff(created.Windows, stored.Windows); diff != "" {
		t.Fatalf("windows changed (-created +stored):\n%s", diff)
	}
	if diff := cmp.Diff(created.QuoteDetails, stored.QuoteDetails); diff != "" {
		t.Fatalf("details changed (-created +stored):\n%s", diff)
	}
	assert.Equal(t, created.Customer, stored.Customer)
}
