package docstore

import (
	"context"
	"reflect"
	"sync"
	"time"

	"quickquote/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

type queryFunc func(ctx context.Context) ([]interfaces.Document, error)

// subscription runs watch callbacks one at a time and never after stop has
// returned. stop waits for a callback that is already running, so it must not
// be called from inside onChange or onError.
type subscription struct {
	mu      sync.Mutex
	stopped bool
	cancel  context.CancelFunc
}

func newSubscription(cancel context.CancelFunc) *subscription {
	return &subscription{cancel: cancel}
}

func (s *subscription) deliver(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	fn()
}

func (s *subscription) stop() {
	s.cancel()
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

// pollingWatch re-runs query whenever the feed signals or the poll interval
// elapses, and delivers the result when it differs from the last delivery.
// The first result is always delivered. A zero poll disables the ticker.
func pollingWatch(
	ctx context.Context,
	feed ChangeFeed,
	collection string,
	poll time.Duration,
	query queryFunc,
	onChange func([]interfaces.Document),
	onError func(error),
	log zerolog.Logger,
) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)
	sub := newSubscription(cancel)

	var (
		changes     <-chan struct{}
		unsubscribe = func() {}
	)
	if feed != nil {
		ch, stop, err := feed.Subscribe(ctx, collection)
		if err != nil {
			cancel()
			return nil, err
		}
		changes, unsubscribe = ch, stop
	}

	go func() {
		defer unsubscribe()

		var tick <-chan time.Time
		if poll > 0 {
			ticker := time.NewTicker(poll)
			defer ticker.Stop()
			tick = ticker.C
		}

		var (
			last      []interfaces.Document
			delivered bool
		)
		refresh := func() {
			docs, err := query(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				log.Warn().Err(err).Str("collection", collection).Msg("[docstore][watch] query failed")
				if onError != nil {
					sub.deliver(func() { onError(err) })
				}
				return
			}
			if delivered && reflect.DeepEqual(last, docs) {
				return
			}
			last, delivered = docs, true
			sub.deliver(func() { onChange(docs) })
		}

		refresh()
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				refresh()
			case <-tick:
				refresh()
			}
		}
	}()

	return sub.stop, nil
}
