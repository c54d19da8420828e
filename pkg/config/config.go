package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

type Config struct {
	ServerPort      string `env:"SERVER_PORT" envDefault:"8080"`
	Environment     string `env:"ENVIRONMENT" envDefault:"development"`
	FirebaseProject string `env:"FIREBASE_PROJECT_ID,required"`
	StorageBucket   string `env:"STORAGE_BUCKET"`

	// Credentials: inline JSON wins over a file path.
	ServiceAccountJSON string `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	ServiceAccountPath string `env:"FIREBASE_SERVICE_ACCOUNT_PATH"`

	PaymentServerKey   string `env:"PAYMENT_SERVER_KEY"`
	PaymentClientKey   string `env:"PAYMENT_CLIENT_KEY"`
	PaymentEnvironment string `env:"PAYMENT_ENVIRONMENT" envDefault:"sandbox"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	DefaultPageSize   int   `env:"DEFAULT_PAGE_SIZE" envDefault:"10"`
	MaxUploadBytes    int64 `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`
	RateLimitPerMin   int   `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	CallbackLimitPerM int   `env:"CALLBACK_RATE_LIMIT_PER_MINUTE" envDefault:"100"`
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ClientOptions returns the credential options shared by the Firebase,
// Firestore and Storage clients. Empty means application default
// credentials.
func (c *Config) ClientOptions() []option.ClientOption {
	switch {
	case c.ServiceAccountJSON != "":
		return []option.ClientOption{option.WithCredentialsJSON([]byte(c.ServiceAccountJSON))}
	case c.ServiceAccountPath != "":
		return []option.ClientOption{option.WithCredentialsFile(c.ServiceAccountPath)}
	}
	return nil
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}

	return &cfg, nil
}
