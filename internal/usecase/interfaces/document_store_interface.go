package interfaces

import (
	"context"
	"errors"
)

// Collections used by the service.
const (
	CollectionRates  = "Rates"
	CollectionQuotes = "Quotes"
)

// ErrDocumentNotFound is returned by Update and Delete when the target does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// ErrDocumentExists is returned by Create when the id is already taken.
var ErrDocumentExists = errors.New("document already exists")

// Document is a stored document and its id.
type Document struct {
	ID   string
	Data map[string]any
}

// IDocumentStore abstracts the key-addressed document database (DynamoDB,
// Firestore, in-memory).
//
// Get returns (nil, nil) when the document does not exist. Set overwrites the whole
// document. Update overwrites the given top-level fields only; a nested value passed
// for a field replaces the stored one wholesale.
//
// Watch delivers the complete current result of Query(collection, field, value)
// every time it may have changed, starting with the initial result. It stops when
// ctx is done or the returned func is called.
type IDocumentStore interface {
	NewID(collection string) string
	Get(ctx context.Context, collection, id string) (map[string]any, error)
	Create(ctx context.Context, collection, id string, data map[string]any) error
	Set(ctx context.Context, collection, id string, data map[string]any) error
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	Query(ctx context.Context, collection, field string, value any) ([]Document, error)
	Watch(ctx context.Context, collection, field string, value any, onChange func([]Document), onError func(error)) (stop func(), err error)
}
