package interfaces

import (
	"context"
	"errors"
)

// ErrNoProvider means the request carries no authenticated provider.
var ErrNoProvider = errors.New("no authenticated provider")

// IIdentityProvider supplies the acting provider's id. It returns ErrNoProvider
// when there is none; callers fail closed.
type IIdentityProvider interface {
	ProviderID(ctx context.Context) (string, error)
}
