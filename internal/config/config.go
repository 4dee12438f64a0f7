package config

import (
	"fmt"
	"time"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/notifier"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/storage/cloudinary"
	pkgconfig "github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/config"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/database"
	pkgvalidator "github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/validator"
)

// Config holds all configuration for the storefront backend.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development" validate:"oneof=development staging production"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// PostgreSQL
	PostgresHost string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser string `env:"POSTGRES_USER" envDefault:"storefront"`
	PostgresPass string `env:"POSTGRES_PASSWORD" envDefault:"storefront_secret"`
	PostgresDB   string `env:"POSTGRES_DB" envDefault:"storefront"`
	PostgresSSL  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`

	// Redis (server-side cart)
	RedisHost string        `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort int           `env:"REDIS_PORT" envDefault:"6379"`
	RedisPass string        `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`
	CartTTL   time.Duration `env:"CART_TTL" envDefault:"168h"`

	// Order email notifications. Without SMTP credentials a disposable
	// Ethereal test account is provisioned instead.
	SMTPHost   string `env:"SMTP_HOST" envDefault:""`
	SMTPPort   int    `env:"SMTP_PORT" envDefault:"587" validate:"gte=1,lte=65535"`
	SMTPSecure bool   `env:"SMTP_SECURE" envDefault:"false"`
	SMTPUser   string `env:"SMTP_USER" envDefault:""`
	SMTPPass   string `env:"SMTP_PASS" envDefault:""`
	FromEmail  string `env:"FROM_EMAIL" envDefault:"" validate:"omitempty,email"`
	AdminEmail string `env:"ADMIN_EMAIL" envDefault:"" validate:"omitempty,email"`
	SiteName   string `env:"SITE_NAME" envDefault:"Mangaiyar Fresh Foods"`

	// Order WhatsApp notifications via Twilio.
	TwilioAccountSID       string `env:"TWILIO_ACCOUNT_SID" envDefault:""`
	TwilioAuthToken        string `env:"TWILIO_AUTH_TOKEN" envDefault:""`
	TwilioWhatsAppNumber   string `env:"TWILIO_WHATSAPP_NUMBER" envDefault:""`
	WhatsAppAdminNumber    string `env:"WHATSAPP_ADMIN_NUMBER" envDefault:""`
	WhatsAppSendToCustomer bool   `env:"WHATSAPP_SEND_TO_CUSTOMER" envDefault:"false"`

	// Image uploads. Without Cloudinary credentials uploads fall back to the
	// in-memory store, which only makes sense in development.
	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME" envDefault:""`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY" envDefault:""`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET" envDefault:""`
	CloudinaryFolder    string `env:"CLOUDINARY_FOLDER" envDefault:"mangaiyar"`
	UploadBaseURL       string `env:"UPLOAD_BASE_URL" envDefault:"http://localhost:8080" validate:"url"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Pprof endpoint allowlist.
	PprofAllowedCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"127.0.0.1/32" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if err := pkgvalidator.Validate(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.CartTTL <= 0 {
		return fmt.Errorf("cart TTL must be positive, got %s", c.CartTTL)
	}
	if (c.TwilioAccountSID == "") != (c.TwilioAuthToken == "") {
		return fmt.Errorf("twilio account sid and auth token must be set together")
	}
	return nil
}

// Postgres returns the connection pool configuration.
func (c *Config) Postgres() database.PostgresConfig {
	pg := database.DefaultPostgresConfig()
	pg.Host = c.PostgresHost
	pg.Port = c.PostgresPort
	pg.User = c.PostgresUser
	pg.Password = c.PostgresPass
	pg.DBName = c.PostgresDB
	pg.SSLMode = c.PostgresSSL
	return pg
}

// Redis returns the Redis client configuration.
func (c *Config) Redis() database.RedisConfig {
	return database.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPass,
		DB:       c.RedisDB,
		PoolSize: 10,
	}
}

// Email returns the order email notifier configuration.
func (c *Config) Email() notifier.EmailConfig {
	return notifier.EmailConfig{
		Host:       c.SMTPHost,
		Port:       c.SMTPPort,
		Secure:     c.SMTPSecure,
		User:       c.SMTPUser,
		Pass:       c.SMTPPass,
		FromEmail:  c.FromEmail,
		AdminEmail: c.AdminEmail,
		SiteName:   c.SiteName,
	}
}

// WhatsApp returns the order WhatsApp notifier configuration.
func (c *Config) WhatsApp() notifier.WhatsAppConfig {
	return notifier.WhatsAppConfig{
		AccountSID:     c.TwilioAccountSID,
		AuthToken:      c.TwilioAuthToken,
		FromNumber:     c.TwilioWhatsAppNumber,
		AdminNumber:    c.WhatsAppAdminNumber,
		SendToCustomer: c.WhatsAppSendToCustomer,
	}
}

// Cloudinary returns the Cloudinary storage configuration.
func (c *Config) Cloudinary() cloudinary.Config {
	return cloudinary.Config{
		CloudName: c.CloudinaryCloudName,
		APIKey:    c.CloudinaryAPIKey,
		APISecret: c.CloudinaryAPISecret,
		Folder:    c.CloudinaryFolder,
	}
}

// CloudinaryConfigured reports whether Cloudinary credentials are present.
func (c *Config) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}
