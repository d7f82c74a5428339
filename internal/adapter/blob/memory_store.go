package blob

import (
	"context"
	"sync"

	"quickquote/internal/usecase/interfaces"
)

type memoryObject struct {
	data        []byte
	contentType string
}

// MemoryStore keeps attachments in process memory, for local runs and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string]memoryObject
}

var _ interfaces.IBlobStore = (*MemoryStore)(nil)

func NewMemoryStore(baseURL string) *MemoryStore {
	if baseURL == "" {
		baseURL = "http://localhost/blobs"
	}
	return &MemoryStore{baseURL: baseURL, objects: map[string]memoryObject{}}
}

func (s *MemoryStore) Upload(_ context.Context, path string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = memoryObject{data: append([]byte(nil), data...), contentType: contentType}
	return path, nil
}

func (s *MemoryStore) DownloadURL(_ context.Context, handle string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.objects[handle]; !ok {
		return "", interfaces.ErrBlobNotFound
	}
	return PublicURL(s.baseURL, "local", handle), nil
}

func (s *MemoryStore) Delete(_ context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, handle)
	return nil
}

// Object returns a stored object's bytes and content type.
func (s *MemoryStore) Object(handle string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[handle]
	return obj.data, obj.contentType, ok
}
