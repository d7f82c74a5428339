package usecase

import (
	"context"
	"quickquote/internal/domain/entities"
	"sync"
)

// SubscribeFunc registers a callback that receives a provider's full quote set
// on every change. It returns the matching unsubscribe.
type SubscribeFunc func(ctx context.Context, onChange func([]entities.Quote)) (func(), error)

// QuoteFeed keeps the latest quote set of a live subscription and signals when
// it changes. Updates are coalesced: a slow reader sees the most recent set,
// never a backlog. After Close the feed ignores further deliveries.
type QuoteFeed struct {
	mu          sync.RWMutex
	current     []entities.Quote
	ready       bool
	closed      bool
	unsubscribe func()
	updates     chan struct{}
}

func NewQuoteFeed(ctx context.Context, subscribe SubscribeFunc) (*QuoteFeed, error) {
	f := &QuoteFeed{updates: make(chan struct{}, 1)}
	stop, err := subscribe(ctx, f.deliver)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.unsubscribe = stop
	f.mu.Unlock()
	return f, nil
}

func (f *QuoteFeed) deliver(quotes []entities.Quote) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.current = append([]entities.Quote(nil), quotes...)
	f.ready = true
	f.mu.Unlock()

	select {
	case f.updates <- struct{}{}:
	default:
	}
}

// Current returns the latest set and whether any set has arrived yet.
func (f *QuoteFeed) Current() ([]entities.Quote, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]entities.Quote(nil), f.current...), f.ready
}

// View applies a listing filter to the latest set.
func (f *QuoteFeed) View(search string, key QuoteSortKey) []entities.Quote {
	quotes, _ := f.Current()
	return FilterAndSortQuotes(quotes, search, key)
}

func (f *QuoteFeed) Updates() <-chan struct{} {
	return f.updates
}

func (f *QuoteFeed) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	stop := f.unsubscribe
	f.mu.Unlock()

	if stop != nil {
		stop()
	}
}
