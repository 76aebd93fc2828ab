// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig             `mapstructure:"app"`
	Server        ServerConfig          `mapstructure:"server"`
	Database      DatabaseConfig        `mapstructure:"database"`
	Notifications NotificationConfig    `mapstructure:"notifications"`
	Gates         GatesConfig           `mapstructure:"gates"`
	Integrations  IntegrationConfig     `mapstructure:"integrations"`
	Forms         map[string]FormConfig `mapstructure:"forms"`
	Logging       LoggingConfig         `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// IsProduction reports whether error detail should be suppressed in responses.
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
	AllowedOrigins  string `mapstructure:"allowed_origins"`  // comma-separated
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// --- Notification Channels ---

// NotificationConfig holds settings for the submission fan-out.
type NotificationConfig struct {
	Email struct {
		Enabled    bool   `mapstructure:"enabled"`
		FromEmail  string `mapstructure:"from_email"`
		AdminEmail string `mapstructure:"admin_email"`
	} `mapstructure:"email"`

	WhatsApp struct {
		Enabled     bool   `mapstructure:"enabled"`
		AdminNumber string `mapstructure:"admin_number"`
		GatewayURL  string `mapstructure:"gateway_url"`
		APIKey      string `mapstructure:"api_key"`
		SenderID    string `mapstructure:"sender_id"`
	} `mapstructure:"whatsapp"`

	// SMSFallback routes WhatsApp-channel messages through SNS when no
	// gateway is configured.
	SMSFallback struct {
		Enabled  bool   `mapstructure:"enabled"`
		SenderID string `mapstructure:"sender_id"`
	} `mapstructure:"sms_fallback"`

	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// --- Gate (captcha/OTP) Configuration ---

type GatesConfig struct {
	Recaptcha struct {
		SecretKey string `mapstructure:"secret_key"`
		VerifyURL string `mapstructure:"verify_url"`
	} `mapstructure:"recaptcha"`

	Twilio struct {
		AccountSID       string `mapstructure:"account_sid"`
		AuthToken        string `mapstructure:"auth_token"`
		VerifyServiceSID string `mapstructure:"verify_service_sid"`
		CountryCode      string `mapstructure:"country_code"`
	} `mapstructure:"twilio"`

	MaxOTPAttempts   int `mapstructure:"max_otp_attempts"`
	OTPAttemptWindow int `mapstructure:"otp_attempt_window"` // minutes
}

// IntegrationConfig holds settings for CMS and AI chat integrations.
type IntegrationConfig struct {
	CMS struct {
		ProjectID  string `mapstructure:"project_id"`
		Dataset    string `mapstructure:"dataset"`
		APIVersion string `mapstructure:"api_version"`
		Token      string `mapstructure:"token"`
		UseCDN     bool   `mapstructure:"use_cdn"`
	} `mapstructure:"cms"`

	GenAI struct {
		BaseURL string `mapstructure:"base_url"`
		APIKey  string `mapstructure:"api_key"`
		Model   string `mapstructure:"model"`
		Timeout int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"genai"`
}

// FormConfig holds per-form-type overrides.
type FormConfig struct {
	// ReferenceMode is "request" (fresh id per submission, the default) or
	// "process" (one id per process lifetime, reproducing the legacy AMC
	// behavior).
	ReferenceMode string `mapstructure:"reference_mode"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
