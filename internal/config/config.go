package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendMemory    = "memory"
	BackendDynamoDB  = "dynamodb"
	BackendFirestore = "firestore"
	BackendGCS       = "gcs"

	AuthModeJWT      = "jwt"
	AuthModeFirebase = "firebase"
)

type HTTPConfig struct {
	Host               string
	Port               int
	CORSAllowedOrigins []string
}

type StoreConfig struct {
	Backend            string
	RatesTable         string
	QuotesTable        string
	FirestoreProjectID string
	RedisURL           string
	PollInterval       time.Duration
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type BlobConfig struct {
	Backend       string
	Bucket        string
	PublicBaseURL string
	PublicRead    bool
}

type AuthConfig struct {
	Mode              string
	AccessSecret      string
	FirebaseProjectID string
}

type Config struct {
	Environment string
	LogLevel    string
	HTTP        HTTPConfig
	Store       StoreConfig
	AWS         AWSConfig
	Blob        BlobConfig
	Auth        AuthConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("STORE_BACKEND", BackendMemory)
	v.SetDefault("RATES_TABLE", "Rates")
	v.SetDefault("QUOTES_TABLE", "Quotes")
	v.SetDefault("SUBSCRIPTION_POLL_INTERVAL", "5s")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("BLOB_BACKEND", BackendMemory)
	v.SetDefault("AUTH_MODE", AuthModeJWT)

	poll, err := time.ParseDuration(v.GetString("SUBSCRIPTION_POLL_INTERVAL"))
	if err != nil {
		return nil, fmt.Errorf("SUBSCRIPTION_POLL_INTERVAL: %w", err)
	}

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTP: HTTPConfig{
			Host:               v.GetString("HTTP_HOST"),
			Port:               v.GetInt("HTTP_PORT"),
			CORSAllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Store: StoreConfig{
			Backend:            strings.ToLower(v.GetString("STORE_BACKEND")),
			RatesTable:         v.GetString("RATES_TABLE"),
			QuotesTable:        v.GetString("QUOTES_TABLE"),
			FirestoreProjectID: v.GetString("FIRESTORE_PROJECT_ID"),
			RedisURL:           v.GetString("REDIS_URL"),
			PollInterval:       poll,
		},
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Blob: BlobConfig{
			Backend:       strings.ToLower(v.GetString("BLOB_BACKEND")),
			Bucket:        v.GetString("GCS_BUCKET"),
			PublicBaseURL: v.GetString("BLOB_PUBLIC_BASE_URL"),
			PublicRead:    v.GetBool("BLOB_PUBLIC_READ"),
		},
		Auth: AuthConfig{
			Mode:              strings.ToLower(v.GetString("AUTH_MODE")),
			AccessSecret:      v.GetString("JWT_ACCESS_SECRET"),
			FirebaseProjectID: v.GetString("FIREBASE_PROJECT_ID"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the service runs with local defaults.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "local"
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

func validate(cfg *Config) error {
	switch cfg.Store.Backend {
	case BackendMemory:
	case BackendDynamoDB:
		if cfg.Store.RatesTable == "" || cfg.Store.QuotesTable == "" {
			return fmt.Errorf("RATES_TABLE and QUOTES_TABLE are required for the dynamodb backend")
		}
	case BackendFirestore:
		if cfg.Store.FirestoreProjectID == "" {
			return fmt.Errorf("FIRESTORE_PROJECT_ID is required for the firestore backend")
		}
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", cfg.Store.Backend)
	}

	switch cfg.Blob.Backend {
	case BackendMemory:
	case BackendGCS:
		if cfg.Blob.Bucket == "" {
			return fmt.Errorf("GCS_BUCKET is required for the gcs blob backend")
		}
	default:
		return fmt.Errorf("unsupported BLOB_BACKEND %q", cfg.Blob.Backend)
	}

	switch cfg.Auth.Mode {
	case AuthModeJWT:
		if cfg.Auth.AccessSecret == "" {
			return fmt.Errorf("JWT_ACCESS_SECRET is required")
		}
	case AuthModeFirebase:
		if cfg.Auth.FirebaseProjectID == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required for firebase auth")
		}
	default:
		return fmt.Errorf("unsupported AUTH_MODE %q", cfg.Auth.Mode)
	}

	if cfg.HTTP.Port <= 0 {
		return fmt.Errorf("HTTP_PORT must be positive")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
