// Package config defines the service configuration, loaded from
// environment variables.
package config

import (
	"time"

	"github.com/utafrali/ReviewDeskGo/pkg/config"
	"github.com/utafrali/ReviewDeskGo/pkg/database"
)

// Config is the full service configuration.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// StorageBackend selects "memory" or "postgres".
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"memory"`
	SeedDemoData   bool   `env:"SEED_DEMO_DATA" envDefault:"false"`

	Postgres database.PostgresConfig

	RedisEnabled bool `env:"REDIS_ENABLED" envDefault:"false"`
	Redis        database.RedisConfig
	DraftTTL     time.Duration `env:"DRAFT_TTL" envDefault:"72h"`

	KafkaEnabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`

	// GMBUseStub serves canned platform data when the GMB API is not
	// approved for the Google Cloud project.
	GMBUseStub         bool   `env:"GMB_USE_STUB" envDefault:"true"`
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URI" envDefault:"http://localhost:8080/api/v1/gmb/callback"`
	GoogleRefreshToken string `env:"GOOGLE_REFRESH_TOKEN"`

	DefaultAdminUser     string `env:"DEFAULT_ADMIN_USER" envDefault:"admin"`
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASSWORD"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
