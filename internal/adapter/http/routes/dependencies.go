package routes

import (
	"context"
	"fmt"

	"quickquote/internal/adapter/blob"
	"quickquote/internal/adapter/identity"
	"quickquote/internal/adapter/persistence/docstore"
	"quickquote/internal/config"
	"quickquote/internal/infrastructure/auth"
	"quickquote/internal/infrastructure/database"
	"quickquote/internal/infrastructure/storage"
	"quickquote/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// Dependencies are the adapters behind the use cases.
type Dependencies struct {
	Documents interfaces.IDocumentStore
	Blobs     interfaces.IBlobStore
	Verifier  identity.TokenVerifier
}

// BuildDependencies connects the backends selected by cfg. The returned cleanup
// closes every client that was opened.
func BuildDependencies(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Dependencies, func(), error) {
	var (
		deps    Dependencies
		closers []func()
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (Dependencies, func(), error) {
		cleanup()
		return Dependencies{}, func() {}, err
	}

	var feed docstore.ChangeFeed = docstore.NewLocalFeed()
	if cfg.Store.RedisURL != "" {
		rdb, err := database.NewRedisClient(ctx, cfg.Store.RedisURL)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, func() { _ = rdb.Close() })
		feed = docstore.NewRedisFeed(rdb, log)
	}

	switch cfg.Store.Backend {
	case config.BackendDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx, cfg.AWS)
		if err != nil {
			return fail(err)
		}
		deps.Documents = docstore.NewDynamoStore(ddb, map[string]string{
			interfaces.CollectionRates:  cfg.Store.RatesTable,
			interfaces.CollectionQuotes: cfg.Store.QuotesTable,
		}, feed, cfg.Store.PollInterval, log)
	case config.BackendFirestore:
		fs, err := database.NewFirestoreClient(ctx, cfg.Store.FirestoreProjectID)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, func() { _ = fs.Close() })
		deps.Documents = docstore.NewFirestoreStore(fs, log)
	case config.BackendMemory:
		log.Warn().Msg("[deps] using in-memory document store, data is lost on restart")
		deps.Documents = docstore.NewMemoryStore(feed, log)
	default:
		return fail(fmt.Errorf("unsupported store backend %q", cfg.Store.Backend))
	}

	switch cfg.Blob.Backend {
	case config.BackendGCS:
		gcs, err := storage.NewGCSClient(ctx)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, func() { _ = gcs.Close() })
		deps.Blobs = blob.NewGCSStore(gcs, cfg.Blob.Bucket, cfg.Blob.PublicBaseURL, cfg.Blob.PublicRead, log)
	case config.BackendMemory:
		deps.Blobs = blob.NewMemoryStore(cfg.Blob.PublicBaseURL)
	default:
		return fail(fmt.Errorf("unsupported blob backend %q", cfg.Blob.Backend))
	}

	switch cfg.Auth.Mode {
	case config.AuthModeFirebase:
		client, err := auth.NewFirebaseAuth(ctx, cfg.Auth.FirebaseProjectID)
		if err != nil {
			return fail(err)
		}
		deps.Verifier = identity.NewFirebaseVerifier(client)
	case config.AuthModeJWT:
		deps.Verifier = identity.NewJWTVerifier(cfg.Auth.AccessSecret)
	default:
		return fail(fmt.Errorf("unsupported auth mode %q", cfg.Auth.Mode))
	}

	log.Info().
		Str("store", cfg.Store.Backend).
		Str("blobs", cfg.Blob.Backend).
		Str("auth", cfg.Auth.Mode).
		Bool("redis_feed", cfg.Store.RedisURL != "").
		Msg("[deps] adapters ready")
	return deps, cleanup, nil
}
