package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config

	applyDefaults(&cfg)

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, 15000, cfg.Server.ReadTimeout)
	assert.Equal(t, 30000, cfg.Server.WriteTimeout)
	assert.Equal(t, 10000, cfg.Server.ShutdownTimeout)

	assert.Equal(t, 25, cfg.Database.Postgres.MaxConnections)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)

	assert.Equal(t, "https://www.google.com/recaptcha/api/siteverify", cfg.Gates.Recaptcha.VerifyURL)
	assert.Equal(t, "+91", cfg.Gates.Twilio.CountryCode)
	assert.Equal(t, 5, cfg.Gates.MaxOTPAttempts)
	assert.Equal(t, 60, cfg.Gates.OTPAttemptWindow)

	assert.Equal(t, "ap-south-1", cfg.Notifications.AWS.Region)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	var cfg Config
	cfg.Server.ListenAddr = ":9000"
	cfg.Gates.MaxOTPAttempts = 3

	applyDefaults(&cfg)

	assert.Equal(t, ":9000", cfg.Server.ListenAddr)
	assert.Equal(t, 3, cfg.Gates.MaxOTPAttempts)
}

func validMinimalConfig() Config {
	var cfg Config
	cfg.Database.Postgres.Host = "localhost"
	cfg.Database.Postgres.Database = "dealership"
	cfg.Database.Postgres.User = "app"
	cfg.Database.Redis.Address = "localhost:6379"
	return cfg
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid minimal", func(*Config) {}, ""},
		{"missing postgres host", func(c *Config) { c.Database.Postgres.Host = "" }, "database.postgres.host is required"},
		{"missing postgres database", func(c *Config) { c.Database.Postgres.Database = "" }, "database.postgres.database is required"},
		{"missing redis address", func(c *Config) { c.Database.Redis.Address = "" }, "database.redis.address is required"},
		{"email enabled without sender", func(c *Config) { c.Notifications.Email.Enabled = true }, "notifications.email.from_email is required when email is enabled"},
		{"bad reference mode", func(c *Config) {
			c.Forms = map[string]FormConfig{"submit-amc": {ReferenceMode: "startup"}}
		}, `forms.submit-amc.reference_mode must be "request" or "process"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validMinimalConfig()
			tt.mutate(&cfg)

			err := validateConfig(&cfg)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile_MinimalYAMLGetsDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
database:
  postgres:
    host: localhost
    database: dealership
    user: app
  redis:
    address: localhost:6379
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, "+91", cfg.Gates.Twilio.CountryCode)
	assert.Equal(t, "https://www.google.com/recaptcha/api/siteverify", cfg.Gates.Recaptcha.VerifyURL)
	assert.Equal(t, 5, cfg.Gates.MaxOTPAttempts)
	assert.Equal(t, "request", cfg.ReferenceMode("submit-amc"))
}

func TestLoadFromFile_RejectsIncompleteConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
database:
  redis:
    address: localhost:6379
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := LoadFromFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.postgres.host is required")
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
}

func TestReferenceMode(t *testing.T) {
	cfg := validMinimalConfig()
	cfg.Forms = map[string]FormConfig{"submit-amc": {ReferenceMode: "process"}}

	assert.Equal(t, "process", cfg.ReferenceMode("submit-amc"))
	assert.Equal(t, "request", cfg.ReferenceMode("contact"))
}
