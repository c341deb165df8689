package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Port      int    `envconfig:"APP_PORT" default:"8080"`
	PublicURL string `envconfig:"PUBLIC_URL" default:"http://localhost:3000"`
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	SMTP      SMTPConfig
	Gemini    GeminiConfig
	CORS      CORSConfig
}

// database configuration
type DBConfig struct {
	DSN          string        `envconfig:"DATABASE_URL" required:"true"`
	MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxConnLife  time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// redis configuration, used for the one-time reset-code ledger
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// JWT configuration
type JWTConfig struct {
	Secret       string        `envconfig:"JWT_SECRET" required:"true"`
	ProofTTL     time.Duration `envconfig:"JWT_PROOF_TOKEN_TTL" default:"5m"`
	SessionTTL   time.Duration `envconfig:"JWT_SESSION_TTL" default:"168h"` // 7 days
	ResetCodeTTL time.Duration `envconfig:"JWT_RESET_CODE_TTL" default:"1h"`
}

// SMTP configuration for outbound mail
type SMTPConfig struct {
	Host      string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port      int    `envconfig:"SMTP_PORT" default:"587"`
	User      string `envconfig:"SMTP_USER" required:"true"`
	Password  string `envconfig:"SMTP_PASS" required:"true"`
	From      string `envconfig:"SMTP_FROM" default:""`
	ContactTo string `envconfig:"CONTACT_TO" default:""`
}

// Gemini AI configuration
type GeminiConfig struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY" required:"true"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash-001"`
	BaseURL string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"60s"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.JWT.ProofTTL <= 0 || c.JWT.SessionTTL <= 0 || c.JWT.ResetCodeTTL <= 0 {
		return fmt.Errorf("JWT token TTLs must be positive")
	}
	if !strings.HasPrefix(c.PublicURL, "http://") && !strings.HasPrefix(c.PublicURL, "https://") {
		return fmt.Errorf("PUBLIC_URL must be an absolute http(s) URL")
	}
	if len(c.CORS.TrustedOrigins) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// MailFrom is the sender address for outbound mail, defaulting to the SMTP user.
func (c *Config) MailFrom() string {
	if c.SMTP.From != "" {
		return c.SMTP.From
	}
	return c.SMTP.User
}
