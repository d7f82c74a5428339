package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"quickquote/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTVerifier(t *testing.T) {
	v := NewJWTVerifier("s3cret")

	t.Run("valid token", func(t *testing.T) {
		token, err := v.Issue("p1", time.Hour)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		id, err := v.Verify(context.Background(), token)
		if err != nil || id != "p1" {
			t.Fatalf("got %q, %v", id, err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, _ := v.Issue("p1", -time.Minute)
		if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := NewJWTVerifier("other").Issue("p1", time.Hour)
		if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("no subject", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte("s3cret"))
		if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
			Subject:   "p1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte("s3cret"))
		if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestContextProvider(t *testing.T) {
	var p ContextProvider
	if _, err := p.ProviderID(context.Background()); !errors.Is(err, interfaces.ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
	id, err := p.ProviderID(WithProvider(context.Background(), "p1"))
	if err != nil || id != "p1" {
		t.Fatalf("got %q, %v", id, err)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]struct {
		token string
		ok    bool
	}{
		"Bearer abc":  {"abc", true},
		"bearer  abc": {"abc", true},
		"Basic abc":   {"", false},
		"Bearer":      {"", false},
		"":            {"", false},
	}
	for header, want := range cases {
		token, ok := BearerToken(header)
		if token != want.token || ok != want.ok {
			t.Fatalf("BearerToken(%q) = %q, %v", header, token, ok)
		}
	}
}
