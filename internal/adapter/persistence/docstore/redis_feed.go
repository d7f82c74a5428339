package docstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultChannelPrefix = "quickquote:changes:"

// RedisFeed shares change signals between instances over Redis pub/sub, so a
// watcher on one instance sees writes made through another.
type RedisFeed struct {
	rdb    *redis.Client
	prefix string
	log    zerolog.Logger
}

var _ ChangeFeed = (*RedisFeed)(nil)

func NewRedisFeed(rdb *redis.Client, log zerolog.Logger) *RedisFeed {
	return &RedisFeed{rdb: rdb, prefix: defaultChannelPrefix, log: log}
}

func (f *RedisFeed) channel(collection string) string {
	return f.prefix + collection
}

func (f *RedisFeed) Publish(ctx context.Context, collection string) error {
	if err := f.rdb.Publish(ctx, f.channel(collection), "changed").Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

func (f *RedisFeed) Subscribe(ctx context.Context, collection string) (<-chan struct{}, func(), error) {
	ps := f.rdb.Subscribe(ctx, f.channel(collection))
	// wait for the subscription confirmation so no publish is missed afterwards
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, fmt.Errorf("redis subscribe: %w", err)
	}

	out := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range ps.Channel() {
			signal(out)
		}
	}()

	cancel := func() {
		if err := ps.Close(); err != nil {
			f.log.Debug().Err(err).Str("collection", collection).Msg("[docstore][redis] close subscription")
		}
		<-done
	}
	return out, cancel, nil
}
