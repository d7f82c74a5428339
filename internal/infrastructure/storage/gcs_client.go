package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// NewGCSClient connects with application default credentials.
func NewGCSClient(ctx context.Context) (*storage.Client, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return client, nil
}
