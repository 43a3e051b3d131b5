// Package config loads and validates the service configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	News     NewsConfig     `yaml:"news"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig contains HTTP server settings.
// Timeouts are set from code defaults; override only if you know why.
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8081" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"-" default:"30s"`
	WriteTimeout    time.Duration `yaml:"-" default:"30s"`
	IdleTimeout     time.Duration `yaml:"-" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"-" default:"30s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" default:"5432" validate:"gt=0,lte=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Database string `yaml:"database" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`
}

// AuthConfig contains admin session settings.
// The signing secret may also come from the environment variable named by
// SecretEnv, which takes precedence over the yaml value.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	SecretEnv string        `yaml:"secret_env" default:"ADMIN_JWT_SECRET"`
	TokenTTL  time.Duration `yaml:"-" default:"1h"`
	Issuer    string        `yaml:"issuer" default:"platform-middleware"`
}

// Secret resolves the JWT signing secret, preferring the environment.
func (c *AuthConfig) Secret() ([]byte, error) {
	if c.SecretEnv != "" {
		if v := os.Getenv(c.SecretEnv); v != "" {
			return []byte(v), nil
		}
	}
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("admin jwt secret not set (yaml auth.jwt_secret or env %s)", c.SecretEnv)
	}
	return []byte(c.JWTSecret), nil
}

// NewsConfig contains news cache settings.
type NewsConfig struct {
	TTL             time.Duration `yaml:"-" default:"24h"`
	CleanupInterval time.Duration `yaml:"-" default:"1h"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"console"`
	OutputPath string `yaml:"output_path"`
}

// Load reads, defaults and validates configuration from a yaml file.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
