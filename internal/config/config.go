package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App   AppConfig   `mapstructure:"app"`
	API   APIConfig   `mapstructure:"api"`
	State StateConfig `mapstructure:"state"`
	Log   LogConfig   `mapstructure:"log"`
	OTel  OTelConfig  `mapstructure:"otel"`
	Mock  MockConfig  `mapstructure:"mock"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"` // development, staging, production
	Version     string `mapstructure:"version"`
}

// APIConfig holds settings for the remote bookstore API
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StateConfig holds settings for locally persisted client state
type StateConfig struct {
	// Dir is where the session file lives. Empty means the platform
	// user config dir is used.
	Dir string `mapstructure:"dir"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled       bool    `mapstructure:"enabled"`
	ServiceName   string  `mapstructure:"service_name"`
	CollectorAddr string  `mapstructure:"collector_addr"`
	SampleRatio   float64 `mapstructure:"sample_ratio"`
}

// MockConfig holds settings for the bundled mock API server
type MockConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr returns the mock server listen address
func (m *MockConfig) Addr() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// The .env file is optional, env vars still apply without it; a
	// present but unreadable one is an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}
	if err := bindConfig(v, cfg); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("APP_NAME", "litshelf")
	v.SetDefault("APP_ENVIRONMENT", "development")
	v.SetDefault("APP_VERSION", "1.0.0")

	// Remote API defaults
	v.SetDefault("API_BASE_URL", "http://localhost:3001/api")
	v.SetDefault("API_TIMEOUT", "15s")

	// Local state defaults
	v.SetDefault("STATE_DIR", "")

	// Log defaults
	v.SetDefault("LOG_LEVEL", "info")

	// OTel defaults
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SERVICE_NAME", "litshelf-storefront")
	v.SetDefault("OTEL_COLLECTOR_ADDR", "localhost:4317")
	v.SetDefault("OTEL_SAMPLE_RATIO", 1.0)

	// Mock API server defaults
	v.SetDefault("MOCK_HOST", "0.0.0.0")
	v.SetDefault("MOCK_PORT", 3001)
	v.SetDefault("MOCK_JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("MOCK_TOKEN_TTL", "1h")
	v.SetDefault("MOCK_READ_TIMEOUT", "15s")
	v.SetDefault("MOCK_WRITE_TIMEOUT", "15s")
}

func bindConfig(v *viper.Viper, cfg *Config) error {
	cfg.App.Name = v.GetString("APP_NAME")
	cfg.App.Environment = v.GetString("APP_ENVIRONMENT")
	cfg.App.Version = v.GetString("APP_VERSION")

	cfg.API.BaseURL = v.GetString("API_BASE_URL")
	cfg.API.Timeout = v.GetDuration("API_TIMEOUT")

	cfg.State.Dir = v.GetString("STATE_DIR")

	cfg.Log.Level = v.GetString("LOG_LEVEL")

	cfg.OTel.Enabled = v.GetBool("OTEL_ENABLED")
	cfg.OTel.ServiceName = v.GetString("OTEL_SERVICE_NAME")
	cfg.OTel.CollectorAddr = v.GetString("OTEL_COLLECTOR_ADDR")
	cfg.OTel.SampleRatio = v.GetFloat64("OTEL_SAMPLE_RATIO")

	cfg.Mock.Host = v.GetString("MOCK_HOST")
	cfg.Mock.Port = v.GetInt("MOCK_PORT")
	cfg.Mock.JWTSecret = v.GetString("MOCK_JWT_SECRET")
	cfg.Mock.TokenTTL = v.GetDuration("MOCK_TOKEN_TTL")
	cfg.Mock.ReadTimeout = v.GetDuration("MOCK_READ_TIMEOUT")
	cfg.Mock.WriteTimeout = v.GetDuration("MOCK_WRITE_TIMEOUT")

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}

	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("invalid API base URL: %s", c.API.BaseURL)
	}

	if c.Mock.Port <= 0 || c.Mock.Port > 65535 {
		return fmt.Errorf("invalid mock server port: %d", c.Mock.Port)
	}

	if c.App.Environment == "production" && c.Mock.JWTSecret == "dev-secret-change-me" {
		return fmt.Errorf("mock JWT secret must be changed in production")
	}

	return nil
}

// StateDir resolves the directory for persisted client state, creating it
// if necessary.
func (c *Config) StateDir() (string, error) {
	dir := c.State.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, c.App.Name)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create state dir: %w", err)
	}
	return dir, nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
