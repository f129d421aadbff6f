package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")
	os.Unsetenv("ENV_SCHEMA_VERSION")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_NAME", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", ExampleDBPassword)
	t.Setenv("API_KEY", ExampleAPIKey)

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
}

func TestValidateEnvWithWarnings_APIKeyDisabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("API_KEY", "")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "authentication is disabled")
}

func TestValidateEnvWithWarnings_Clean(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("API_KEY", "a-real-key")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	for _, envVar := range RequiredEnvVars {
		t.Setenv(envVar, "test_value")
	}
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{Port: 8080, LogFormat: "json", DBMaxConns: 25, ShutdownTimeout: 15 * time.Second}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"text format any case", func(c *Config) { c.LogFormat = "TEXT" }, ""},
		{"zero port", func(c *Config) { c.Port = 0 }, "PORT 0"},
		{"port too large", func(c *Config) { c.Port = 70000 }, "PORT 70000"},
		{"unknown format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"no connections", func(c *Config) { c.DBMaxConns = 0 }, "DB_MAX_CONNS"},
		{"no shutdown budget", func(c *Config) { c.ShutdownTimeout = 0 }, "SHUTDOWN_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
