package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"JWT_ACCESS_SECRET": "s"}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, BackendMemory, cfg.Blob.Backend)
	assert.Equal(t, AuthModeJWT, cfg.Auth.Mode)
	assert.Equal(t, 5*time.Second, cfg.Store.PollInterval)
	assert.Equal(t, "Rates", cfg.Store.RatesTable)
	assert.Nil(t, cfg.HTTP.CORSAllowedOrigins)
}

func TestFromViper_Values(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"APP_ENV":                    "production",
		"HTTP_PORT":                  "9090",
		"STORE_BACKEND":              "DynamoDB",
		"QUOTES_TABLE":               "quotes-prod",
		"BLOB_BACKEND":               "gcs",
		"GCS_BUCKET":                 "quote-images",
		"BLOB_PUBLIC_READ":           "true",
		"AUTH_MODE":                  "firebase",
		"FIREBASE_PROJECT_ID":        "quickquote",
		"SUBSCRIPTION_POLL_INTERVAL": "2s",
		"CORS_ALLOWED_ORIGINS":       "https://a.example, https://b.example,",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, BackendDynamoDB, cfg.Store.Backend)
	assert.Equal(t, "quotes-prod", cfg.Store.QuotesTable)
	assert.True(t, cfg.Blob.PublicRead)
	assert.Equal(t, 2*time.Second, cfg.Store.PollInterval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSAllowedOrigins)
}

func TestFromViper_Invalid(t *testing.T) {
	cases := map[string]map[string]any{
		"missing jwt secret":     {},
		"unknown store":          {"JWT_ACCESS_SECRET": "s", "STORE_BACKEND": "postgres"},
		"firestore without id":   {"JWT_ACCESS_SECRET": "s", "STORE_BACKEND": "firestore"},
		"gcs without bucket":     {"JWT_ACCESS_SECRET": "s", "BLOB_BACKEND": "gcs"},
		"firebase without id":    {"AUTH_MODE": "firebase"},
		"unknown auth mode":      {"AUTH_MODE": "basic"},
		"bad poll interval":      {"JWT_ACCESS_SECRET": "s", "SUBSCRIPTION_POLL_INTERVAL": "soon"},
		"non positive http port": {"JWT_ACCESS_SECRET": "s", "HTTP_PORT": -1},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fromViper(newViper(values))
			assert.Error(t, err)
		})
	}
}
