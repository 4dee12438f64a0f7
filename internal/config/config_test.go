package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "storefront", cfg.PostgresDB)
	assert.Equal(t, 168*time.Hour, cfg.CartTTL)
	assert.Equal(t, "Mangaiyar Fresh Foods", cfg.SiteName)
	assert.False(t, cfg.WhatsAppSendToCustomer)
	assert.False(t, cfg.CloudinaryConfigured())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CART_TTL", "24h")
	t.Setenv("SMTP_HOST", "smtp.gmail.com")
	t.Setenv("SMTP_USER", "orders@mangaiyar.example")
	t.Setenv("SMTP_PASS", "app-password")
	t.Setenv("WHATSAPP_SEND_TO_CUSTOMER", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://mangaiyarfreshfoods.example,https://admin.mangaiyarfreshfoods.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.CartTTL)
	assert.True(t, cfg.WhatsAppSendToCustomer)
	assert.Len(t, cfg.CORSAllowedOrigins, 2)

	email := cfg.Email()
	assert.Equal(t, "smtp.gmail.com", email.Host)
	assert.Equal(t, 587, email.Port)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP port")
}

func TestLoad_InvalidAdminEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "not-an-email")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_TwilioCredentialsMustPair(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "ACxxxxxxxx")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be set together")
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PASSWORD", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	pg := cfg.Postgres()
	dsn := pg.DSN()
	assert.Contains(t, dsn, "db.internal")
	assert.Contains(t, dsn, "s3cret")
	assert.Contains(t, dsn, "sslmode=disable")
}
