// internal/config/config.go
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel             string        `mapstructure:"LOG_LEVEL"`
	DBURL                string        `mapstructure:"DB_URL"`
	HTTPAddr             string        `mapstructure:"HTTP_ADDR"`
	AllowedOrigins       []string      `mapstructure:"ALLOWED_ORIGINS"`
	GithubToken          string        `mapstructure:"GITHUB_TOKEN"`
	GithubAPIURL         string        `mapstructure:"GITHUB_API_URL"`
	StatsSyncInterval    time.Duration `mapstructure:"STATS_SYNC_INTERVAL"`
	StatsSyncConcurrency int           `mapstructure:"STATS_SYNC_CONCURRENCY"`
	MigrationsPath       string        `mapstructure:"MIGRATIONS_PATH"`
	SeedFile             string        `mapstructure:"SEED_FILE"`
	ShutdownTimeout      time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var keys = []string{
	"LOG_LEVEL", "DB_URL", "HTTP_ADDR", "ALLOWED_ORIGINS", "GITHUB_TOKEN", "GITHUB_API_URL", "STATS_SYNC_INTERVAL",
	"STATS_SYNC_CONCURRENCY", "MIGRATIONS_PATH", "SEED_FILE", "SHUTDOWN_TIMEOUT",
}

// LoadConfig reads configuration from a .env file in dir (if present) and environment variables.
// Environment variables win over the file.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("STATS_SYNC_INTERVAL", "1h")
	v.SetDefault("STATS_SYNC_CONCURRENCY", 5)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	// Load from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(dir)
	_ = v.ReadInConfig() // Ignore error if file not found

	// Bind environment variables. Explicit binds make keys without a default visible to Unmarshal.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.DBURL == "" {
		return nil, errors.New("DB_URL is a required configuration field")
	}
	if cfg.StatsSyncInterval < 0 {
		return nil, errors.New("STATS_SYNC_INTERVAL must not be negative (0 disables the stats syncer)")
	}
	if cfg.StatsSyncConcurrency <= 0 {
		return nil, errors.New("STATS_SYNC_CONCURRENCY must be at least 1")
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	return &cfg, nil
}
