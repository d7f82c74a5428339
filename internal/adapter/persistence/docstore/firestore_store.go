package docstore

import (
	"context"
	"errors"
	"sort"

	"quickquote/internal/usecase/interfaces"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore persists documents in Cloud Firestore. Collections map 1:1 to
// Firestore collections and Watch uses native query snapshots.
type FirestoreStore struct {
	client *firestore.Client
	log    zerolog.Logger
}

var _ interfaces.IDocumentStore = (*FirestoreStore)(nil)

func NewFirestoreStore(client *firestore.Client, log zerolog.Logger) *FirestoreStore {
	return &FirestoreStore{client: client, log: log}
}

func (s *FirestoreStore) NewID(collection string) string {
	return s.client.Collection(collection).NewDoc().ID
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return snap.Data(), nil
}

func (s *FirestoreStore) Create(ctx context.Context, collection, id string, data map[string]any) error {
	_, err := s.client.Collection(collection).Doc(id).Create(ctx, data)
	if status.Code(err) == codes.AlreadyExists {
		return interfaces.ErrDocumentExists
	}
	return err
}

func (s *FirestoreStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, data)
	return err
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	updates := make([]firestore.Update, 0, len(keys))
	for _, k := range keys {
		// FieldPath keeps the whole value at k, so nested maps replace instead of merge
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: fields[k]})
	}

	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return interfaces.ErrDocumentNotFound
	}
	return err
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return interfaces.ErrDocumentNotFound
	}
	return err
}

func (s *FirestoreStore) Query(ctx context.Context, collection, field string, value any) ([]interfaces.Document, error) {
	snaps, err := s.client.Collection(collection).Where(field, "==", value).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return toDocuments(snaps), nil
}

func (s *FirestoreStore) Watch(ctx context.Context, collection, field string, value any, onChange func([]interfaces.Document), onError func(error)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)
	sub := newSubscription(cancel)
	it := s.client.Collection(collection).Where(field, "==", value).Snapshots(ctx)

	go func() {
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if errors.Is(err, iterator.Done) || ctx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}
				s.log.Warn().Err(err).Str("collection", collection).Msg("[docstore][firestore] snapshot failed")
				if onError != nil {
					sub.deliver(func() { onError(err) })
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				if onError != nil {
					sub.deliver(func() { onError(err) })
				}
				continue
			}
			sub.deliver(func() { onChange(toDocuments(docs)) })
		}
	}()

	return sub.stop, nil
}

func toDocuments(snaps []*firestore.DocumentSnapshot) []interfaces.Document {
	out := make([]interfaces.Document, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, interfaces.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return out
}
