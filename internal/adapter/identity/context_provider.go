package identity

import (
	"context"
	"errors"
	"strings"

	"quickquote/internal/usecase/interfaces"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier turns a bearer token into the provider id it was issued to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (providerID string, err error)
}

type providerKey struct{}

// WithProvider returns a context carrying the acting provider.
func WithProvider(ctx context.Context, providerID string) context.Context {
	return context.WithValue(ctx, providerKey{}, providerID)
}

// ContextProvider reads the acting provider placed on the request context by
// the auth middleware.
type ContextProvider struct{}

var _ interfaces.IIdentityProvider = ContextProvider{}

func (ContextProvider) ProviderID(ctx context.Context) (string, error) {
	id, _ := ctx.Value(providerKey{}).(string)
	if strings.TrimSpace(id) == "" {
		return "", interfaces.ErrNoProvider
	}
	return id, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
