package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port          string `yaml:"port" env:"SERVER_PORT"`
		Mode          string `yaml:"mode" env:"SERVER_MODE"`
		ClientOrigins string `yaml:"client_origins" env:"CLIENT_ORIGINS"`
		ClientURL     string `yaml:"client_url" env:"CLIENT_URL"`
	} `yaml:"server"`

	Database struct {
		URI  string `yaml:"uri" env:"MONGODB_URI"`
		Name string `yaml:"name" env:"MONGODB_NAME"`
	} `yaml:"database"`

	JWT struct {
		Secret     string `yaml:"secret" env:"ACCESS_TOKEN_SECRET"`
		TokenTTL   string `yaml:"token_ttl" env:"JWT_TOKEN_TTL"`
		CookieName string `yaml:"cookie_name" env:"JWT_COOKIE_NAME"`
		Issuer     string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Payment struct {
		StoreID       string `yaml:"store_id" env:"STORE_ID"`
		StorePassword string `yaml:"store_password" env:"STORE_PASSWORD"`
		Sandbox       bool   `yaml:"sandbox" env:"PAYMENT_SANDBOX"`
		CallbackBase  string `yaml:"callback_base" env:"PAYMENT_CALLBACK_BASE"`
	} `yaml:"payment"`

	Stripe struct {
		SecretKey string `yaml:"secret_key" env:"STRIPE_SECRET_KEY"`
	} `yaml:"stripe"`

	Seed struct {
		AdminEmail string `yaml:"admin_email" env:"ADMIN_EMAIL"`
		AdminName  string `yaml:"admin_name" env:"ADMIN_NAME"`
	} `yaml:"seed"`

	Email struct {
		Enabled bool   `yaml:"enabled" env:"EMAIL_ENABLED"`
		Domain  string `yaml:"domain" env:"MAILGUN_DOMAIN"`
		APIKey  string `yaml:"api_key" env:"MAILGUN_API_KEY"`
		Sender  string `yaml:"sender" env:"EMAIL_SENDER"`
	} `yaml:"email"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from an optional .env file, an optional YAML
// file, and environment variables, in increasing order of precedence.
func LoadConfig(configPath string) (*Config, error) {
	// Best effort; the file is only present in local development
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.ClientOrigins = "http://localhost:3000,http://localhost:5173"
	config.Server.ClientURL = "http://localhost:3000/dashboard/courses"

	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "coursemart"

	config.JWT.TokenTTL = "24h"
	config.JWT.CookieName = "token"
	config.JWT.Issuer = "coursemart.app"

	config.Payment.Sandbox = true
	config.Payment.CallbackBase = "http://localhost:5000"

	config.Email.Sender = "noreply@coursemart.app"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.URI == "" {
		return fmt.Errorf("database uri is required")
	}

	if config.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.TokenTTL); err != nil {
		return fmt.Errorf("invalid JWT token TTL format: %w", err)
	}

	return nil
}

// TokenTTL returns the parsed token lifetime. Validity is checked at load
// time, so parse errors cannot occur here.
func (c *Config) TokenTTL() time.Duration {
	d, _ := time.ParseDuration(c.JWT.TokenTTL)
	return d
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}

// Origins returns the allowed CORS origins
func (c *Config) Origins() []string {
	parts := strings.Split(c.Server.ClientOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
