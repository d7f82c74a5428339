package docstore

import (
	"context"
	"sync"
)

// ChangeFeed announces that a collection changed. Watchers re-run their query
// on every signal; a signal carries no payload.
type ChangeFeed interface {
	Publish(ctx context.Context, collection string) error
	Subscribe(ctx context.Context, collection string) (<-chan struct{}, func(), error)
}

// LocalFeed is an in-process ChangeFeed. It only sees writes made through the
// same process.
type LocalFeed struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]chan struct{}
}

var _ ChangeFeed = (*LocalFeed)(nil)

func NewLocalFeed() *LocalFeed {
	return &LocalFeed{subs: map[string]map[int]chan struct{}{}}
}

func (f *LocalFeed) Publish(_ context.Context, collection string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs[collection] {
		signal(ch)
	}
	return nil
}

func (f *LocalFeed) Subscribe(_ context.Context, collection string) (<-chan struct{}, func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++
	ch := make(chan struct{}, 1)
	if f.subs[collection] == nil {
		f.subs[collection] = map[int]chan struct{}{}
	}
	f.subs[collection][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs[collection], id)
			f.mu.Unlock()
		})
	}
	return ch, cancel, nil
}

// signal never blocks; a pending signal already covers the new change.
func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
