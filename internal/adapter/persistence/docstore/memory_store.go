package docstore

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"quickquote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type memoryDoc struct {
	seq  int64
	data map[string]any
}

// MemoryStore is an IDocumentStore kept in process memory. Query results come
// back in insertion order. Values are deep-copied on the way in and out.
type MemoryStore struct {
	mu          sync.RWMutex
	seq         int64
	collections map[string]map[string]memoryDoc
	feed        ChangeFeed
	log         zerolog.Logger
}

var _ interfaces.IDocumentStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store. A nil feed gets a LocalFeed.
func NewMemoryStore(feed ChangeFeed, log zerolog.Logger) *MemoryStore {
	if feed == nil {
		feed = NewLocalFeed()
	}
	return &MemoryStore{
		collections: map[string]map[string]memoryDoc{},
		feed:        feed,
		log:         log,
	}
}

func (s *MemoryStore) NewID(string) string {
	return uuid.NewString()
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, nil
	}
	return copyMap(doc.data), nil
}

func (s *MemoryStore) Create(ctx context.Context, collection, id string, data map[string]any) error {
	s.mu.Lock()
	if _, ok := s.collections[collection][id]; ok {
		s.mu.Unlock()
		return interfaces.ErrDocumentExists
	}
	s.put(collection, id, copyMap(data))
	s.mu.Unlock()
	s.changed(ctx, collection)
	return nil
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	s.mu.Lock()
	s.put(collection, id, copyMap(data))
	s.mu.Unlock()
	s.changed(ctx, collection)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	doc, ok := s.collections[collection][id]
	if !ok {
		s.mu.Unlock()
		return interfaces.ErrDocumentNotFound
	}
	for k, v := range fields {
		doc.data[k] = copyValue(v)
	}
	s.mu.Unlock()
	s.changed(ctx, collection)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	if _, ok := s.collections[collection][id]; !ok {
		s.mu.Unlock()
		return interfaces.ErrDocumentNotFound
	}
	delete(s.collections[collection], id)
	s.mu.Unlock()
	s.changed(ctx, collection)
	return nil
}

func (s *MemoryStore) Query(_ context.Context, collection, field string, value any) ([]interfaces.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type hit struct {
		seq int64
		doc interfaces.Document
	}
	var hits []hit
	for id, doc := range s.collections[collection] {
		if reflect.DeepEqual(doc.data[field], value) {
			hits = append(hits, hit{seq: doc.seq, doc: interfaces.Document{ID: id, Data: copyMap(doc.data)}})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].seq < hits[j].seq })

	out := make([]interfaces.Document, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.doc)
	}
	return out, nil
}

func (s *MemoryStore) Watch(ctx context.Context, collection, field string, value any, onChange func([]interfaces.Document), onError func(error)) (func(), error) {
	query := func(ctx context.Context) ([]interfaces.Document, error) {
		return s.Query(ctx, collection, field, value)
	}
	return pollingWatch(ctx, s.feed, collection, 0, query, onChange, onError, s.log)
}

// put keeps the original insertion sequence when a document is overwritten.
func (s *MemoryStore) put(collection, id string, data map[string]any) {
	if s.collections[collection] == nil {
		s.collections[collection] = map[string]memoryDoc{}
	}
	doc, ok := s.collections[collection][id]
	if !ok {
		s.seq++
		doc.seq = s.seq
	}
	doc.data = data
	s.collections[collection][id] = doc
}

func (s *MemoryStore) changed(ctx context.Context, collection string) {
	if err := s.feed.Publish(ctx, collection); err != nil {
		s.log.Warn().Err(err).Str("collection", collection).Msg("[docstore][memory] publish change")
	}
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
