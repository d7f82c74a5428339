package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// NewFirestoreClient connects with application default credentials. The
// FIRESTORE_EMULATOR_HOST environment variable is honored by the client.
func NewFirestoreClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient(%q): %w", projectID, err)
	}
	return client, nil
}
