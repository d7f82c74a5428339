package blob

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"quickquote/internal/usecase/interfaces"

	"cloud.google.com/go/storage"
	"github.com/rs/zerolog"
)

const defaultPublicBaseURL = "https://storage.googleapis.com"

// GCSStore keeps quote attachments in a Cloud Storage bucket. The handle of an
// object is its path inside the bucket.
type GCSStore struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
	publicRead    bool
	log           zerolog.Logger
}

var _ interfaces.IBlobStore = (*GCSStore)(nil)

// NewGCSStore builds a store for bucket. publicBaseURL overrides the
// storage.googleapis.com host (CDN, emulator); publicRead grants allUsers read
// on every uploaded object.
func NewGCSStore(client *storage.Client, bucket, publicBaseURL string, publicRead bool, log zerolog.Logger) *GCSStore {
	if publicBaseURL == "" {
		publicBaseURL = defaultPublicBaseURL
	}
	return &GCSStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		publicRead:    publicRead,
		log:           log,
	}
}

func (s *GCSStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	obj := s.client.Bucket(s.bucket).Object(path)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("gcs write %s: %w", path, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", path, err)
	}

	if s.publicRead {
		if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
			return "", fmt.Errorf("gcs acl %s: %w", path, err)
		}
	}
	s.log.Debug().Str("bucket", s.bucket).Str("path", path).Int("bytes", len(data)).Msg("[blob][gcs] uploaded")
	return path, nil
}

func (s *GCSStore) DownloadURL(_ context.Context, handle string) (string, error) {
	return PublicURL(s.publicBaseURL, s.bucket, handle), nil
}

func (s *GCSStore) Delete(ctx context.Context, handle string) error {
	err := s.client.Bucket(s.bucket).Object(handle).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

// PublicURL renders <base>/<bucket>/<path> with each path segment escaped.
func PublicURL(baseURL, bucket, path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(baseURL, "/") + "/" + bucket + "/" + strings.Join(segments, "/")
}
