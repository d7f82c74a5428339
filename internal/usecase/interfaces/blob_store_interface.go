package interfaces

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by DownloadURL for an unknown handle.
var ErrBlobNotFound = errors.New("blob not found")

// IBlobStore abstracts binary storage for quote attachments.
//
// Upload returns an opaque handle; DownloadURL turns it into a durable URL that
// can be stored on the quote.
type IBlobStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (handle string, err error)
	DownloadURL(ctx context.Context, handle string) (string, error)
	Delete(ctx context.Context, handle string) error
}
