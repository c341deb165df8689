package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/intervue")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("SMTP_USER", "mailer@example.com")
	t.Setenv("SMTP_PASS", "smtp-pass")
	t.Setenv("GEMINI_API_KEY", "test-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, "http://localhost:3000", cfg.PublicURL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.JWT.ProofTTL)
	assert.Equal(t, time.Hour, cfg.JWT.ResetCodeTTL)
	assert.Equal(t, "gemini-2.0-flash-001", cfg.Gemini.Model)
	assert.Equal(t, "mailer@example.com", cfg.MailFrom())
	assert.NotEmpty(t, cfg.GetCORSOrigins())
}

func TestLoad_InvalidEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "qa")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestLoad_ShortSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_BadPublicURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PUBLIC_URL", "localhost:3000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PUBLIC_URL")
}

func TestMailFrom_Override(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SMTP_FROM", "no-reply@intervue.app")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "no-reply@intervue.app", cfg.MailFrom())
}
