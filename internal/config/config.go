package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration (tokens are issued by the external auth provider)
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Table configuration
	FilterDebounceMS     int    `mapstructure:"FILTER_DEBOUNCE_MS"`
	FilterMatchMode      string `mapstructure:"FILTER_MATCH_MODE"`
	TableViewIdleMinutes int    `mapstructure:"TABLE_VIEW_IDLE_MINUTES"`

	// Loadout and like protocol configuration
	MaxLoadoutAttachments int `mapstructure:"MAX_LOADOUT_ATTACHMENTS"`
	LikeTxRetries         int `mapstructure:"LIKE_TX_RETRIES"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "loadouts")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	viper.SetDefault("FILTER_DEBOUNCE_MS", 500)
	viper.SetDefault("FILTER_MATCH_MODE", "substring")
	viper.SetDefault("TABLE_VIEW_IDLE_MINUTES", 30)

	viper.SetDefault("MAX_LOADOUT_ATTACHMENTS", 5)
	viper.SetDefault("LIKE_TX_RETRIES", 3)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" && config.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.FilterDebounceMS < 0 {
		return fmt.Errorf("FILTER_DEBOUNCE_MS must not be negative")
	}

	if config.TableViewIdleMinutes < 0 {
		return fmt.Errorf("TABLE_VIEW_IDLE_MINUTES must not be negative")
	}

	switch strings.ToLower(config.FilterMatchMode) {
	case "substring", "exact":
	default:
		return fmt.Errorf("FILTER_MATCH_MODE must be 'substring' or 'exact', got %q", config.FilterMatchMode)
	}

	if config.MaxLoadoutAttachments < 1 {
		return fmt.Errorf("MAX_LOADOUT_ATTACHMENTS must be at least 1")
	}

	return nil
}

// TableViewIdle returns how long an untouched table view is kept. Zero
// keeps views until their session drops them.
func (c *Config) TableViewIdle() time.Duration {
	return time.Duration(c.TableViewIdleMinutes) * time.Minute
}

// FilterDebounce returns the filter input quiescence window
func (c *Config) FilterDebounce() time.Duration {
	return time.Duration(c.FilterDebounceMS) * time.Millisecond
}

// ExactFilterMatch reports whether filters compare whole values instead of substrings
func (c *Config) ExactFilterMatch() bool {
	return strings.EqualFold(c.FilterMatchMode, "exact")
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
