package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration
type Config struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"booba-market"`
	Version     string `envconfig:"VERSION" default:"dev"`
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`

	DBUser            string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword        string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBHost            string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort            string        `envconfig:"DB_PORT" default:"5432"`
	DBName            string        `envconfig:"DB_NAME" default:"boobamarket"`
	DBMaxConns        int           `envconfig:"DB_MAX_CONNS" default:"25"`
	DBMaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
	DBMaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MigrateOnStart    bool          `envconfig:"MIGRATE_ON_START" default:"true"`

	// APIKey enables API key authentication when non-empty
	APIKey             string        `envconfig:"API_KEY"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	TrustedProxies     []string      `envconfig:"TRUSTED_PROXIES"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine, real env vars may be set instead
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether the app runs in a local development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentDevelopment
}
