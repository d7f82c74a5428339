package usecase

import (
	"context"
	"errors"
	"quickquote/internal/domain/entities"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscription struct {
	onChange func([]entities.Quote)
	stops    int
}

func (f *fakeSubscription) subscribe(_ context.Context, onChange func([]entities.Quote)) (func(), error) {
	f.onChange = onChange
	return func() { f.stops++ }, nil
}

func TestQuoteFeed_TracksLatestSet(t *testing.T) {
	sub := &fakeSubscription{}
	feed, err := NewQuoteFeed(context.Background(), sub.subscribe)
	require.NoError(t, err)

	_, ready := feed.Current()
	assert.False(t, ready)

	sub.onChange(listingFixture())
	sub.onChange(listingFixture()[:2])

	select {
	case <-feed.Updates():
	default:
		t.Fatal("expected an update signal")
	}
	select {
	case <-feed.Updates():
		t.Fatal("updates should be coalesced")
	default:
	}

	current, ready := feed.Current()
	assert.True(t, ready)
	assert.Equal(t, "ab", ids(current))
	assert.Equal(t, "ba", ids(feed.View("", SortByDate)))
}

func TestQuoteFeed_CloseStopsDelivery(t *testing.T) {
	sub := &fakeSubscription{}
	feed, err := NewQuoteFeed(context.Background(), sub.subscribe)
	require.NoError(t, err)

	sub.onChange(listingFixture()[:1])
	feed.Close()
	feed.Close()
	assert.Equal(t, 1, sub.stops)

	// a delivery racing with the unsubscribe is dropped
	sub.onChange(listingFixture())
	current, _ := feed.Current()
	assert.Equal(t, "a", ids(current))
}

func TestQuoteFeed_SubscribeError(t *testing.T) {
	_, err := NewQuoteFeed(context.Background(), func(context.Context, func([]entities.Quote)) (func(), error) {
		return nil, errors.New("denied")
	})
	assert.EqualError(t, err, "denied")
}
