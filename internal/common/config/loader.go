// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like TWILIO_AUTH_TOKEN
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig() // ignore error if not found

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Load .env from the working directory or any parent up to the module root.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				fmt.Printf("Loaded .env from: %s\n", path)
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// Expand ${VAR} placeholders left in YAML values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	// Captcha
	if cfg.Gates.Recaptcha.SecretKey == "" {
		if val := os.Getenv("RECAPTCHA_SECRET_KEY"); val != "" {
			cfg.Gates.Recaptcha.SecretKey = val
		}
	}

	// Twilio Verify
	if cfg.Gates.Twilio.AccountSID == "" {
		if val := os.Getenv("TWILIO_ACCOUNT_SID"); val != "" {
			cfg.Gates.Twilio.AccountSID = val
		}
	}
	if cfg.Gates.Twilio.AuthToken == "" {
		if val := os.Getenv("TWILIO_AUTH_TOKEN"); val != "" {
			cfg.Gates.Twilio.AuthToken = val
		}
	}
	if cfg.Gates.Twilio.VerifyServiceSID == "" {
		if val := os.Getenv("TWILIO_VERIFY_SERVICE_SID"); val != "" {
			cfg.Gates.Twilio.VerifyServiceSID = val
		}
	}

	// Notification recipients
	if cfg.Notifications.Email.AdminEmail == "" {
		if val := os.Getenv("ADMIN_EMAIL"); val != "" {
			cfg.Notifications.Email.AdminEmail = val
		}
	}
	if cfg.Notifications.WhatsApp.AdminNumber == "" {
		if val := os.Getenv("ADMIN_WHATSAPP_NUMBER"); val != "" {
			cfg.Notifications.WhatsApp.AdminNumber = val
		}
	}
	if cfg.Notifications.WhatsApp.APIKey == "" {
		if val := os.Getenv("WHATSAPP_API_KEY"); val != "" {
			cfg.Notifications.WhatsApp.APIKey = val
		}
	}

	// CMS
	if cfg.Integrations.CMS.ProjectID == "" {
		if val := os.Getenv("SANITY_PROJECT_ID"); val != "" {
			cfg.Integrations.CMS.ProjectID = val
		}
	}
	if cfg.Integrations.CMS.Dataset == "" {
		if val := os.Getenv("SANITY_DATASET"); val != "" {
			cfg.Integrations.CMS.Dataset = val
		}
	}
	if cfg.Integrations.CMS.Token == "" {
		if val := os.Getenv("SANITY_API_TOKEN"); val != "" {
			cfg.Integrations.CMS.Token = val
		}
	}

	// GenAI chat
	if cfg.Integrations.GenAI.APIKey == "" {
		if val := os.Getenv("GENAI_API_KEY"); val != "" {
			cfg.Integrations.GenAI.APIKey = val
		}
	}

	// Database overrides
	if cfg.Database.Postgres.User == "" {
		if val := os.Getenv("DB_USER"); val != "" {
			cfg.Database.Postgres.User = val
		}
	}
	if cfg.Database.Postgres.Password == "" {
		if val := os.Getenv("DB_PASSWORD"); val != "" {
			cfg.Database.Postgres.Password = val
		}
	}
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}

	// Database defaults
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 25
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}

	// Gate defaults
	if cfg.Gates.Recaptcha.VerifyURL == "" {
		cfg.Gates.Recaptcha.VerifyURL = "https://www.google.com/recaptcha/api/siteverify"
	}
	if cfg.Gates.Twilio.CountryCode == "" {
		cfg.Gates.Twilio.CountryCode = "+91"
	}
	if cfg.Gates.MaxOTPAttempts == 0 {
		cfg.Gates.MaxOTPAttempts = 5
	}
	if cfg.Gates.OTPAttemptWindow == 0 {
		cfg.Gates.OTPAttemptWindow = 60
	}

	// Integration defaults
	if cfg.Integrations.CMS.APIVersion == "" {
		cfg.Integrations.CMS.APIVersion = "2024-01-01"
	}
	if cfg.Integrations.GenAI.Timeout == 0 {
		cfg.Integrations.GenAI.Timeout = 60000
	}

	// Notification defaults
	if cfg.Notifications.AWS.Region == "" {
		cfg.Notifications.AWS.Region = "ap-south-1"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	// Per-form defaults
	for key, form := range cfg.Forms {
		if form.ReferenceMode == "" {
			form.ReferenceMode = "request"
		}
		cfg.Forms[key] = form
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Database.Postgres.Host == "" {
		return fmt.Errorf("database.postgres.host is required")
	}
	if cfg.Database.Postgres.Database == "" {
		return fmt.Errorf("database.postgres.database is required")
	}
	if cfg.Database.Postgres.User == "" {
		return fmt.Errorf("database.postgres.user is required")
	}

	if cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required")
	}

	if cfg.Notifications.Email.Enabled && cfg.Notifications.Email.FromEmail == "" {
		return fmt.Errorf("notifications.email.from_email is required when email is enabled")
	}
	if cfg.Notifications.Email.Enabled && cfg.Notifications.Email.AdminEmail == "" {
		return fmt.Errorf("notifications.email.admin_email is required when email is enabled")
	}

	for key, form := range cfg.Forms {
		if form.ReferenceMode != "request" && form.ReferenceMode != "process" {
			return fmt.Errorf("forms.%s.reference_mode must be \"request\" or \"process\"", key)
		}
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// ReferenceMode returns the configured reference id mode for a form type,
// defaulting to per-request generation.
func (c *Config) ReferenceMode(formType string) string {
	if form, exists := c.Forms[formType]; exists && form.ReferenceMode != "" {
		return form.ReferenceMode
	}
	return "request"
}
