package identity

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// FirebaseVerifier checks Firebase Auth ID tokens. The Firebase UID is the
// provider id, matching the userId stored on quotes and the Rates document id.
type FirebaseVerifier struct {
	client *auth.Client
}

var _ TokenVerifier = (*FirebaseVerifier)(nil)

func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	t, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return t.UID, nil
}
