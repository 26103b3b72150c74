package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ly2xxx/gco/internal/league"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Google Sheets source
	SheetID      string        `mapstructure:"SHEET_ID"`
	SheetGID     string        `mapstructure:"SHEET_GID"`
	SheetTimeout time.Duration `mapstructure:"SHEET_TIMEOUT"`

	// Dataset handling
	DataCacheTTL time.Duration `mapstructure:"DATA_CACHE_TTL"`
	SampleSeed   int64         `mapstructure:"SAMPLE_SEED"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("SHEET_ID", league.SheetID)
	viper.SetDefault("SHEET_GID", "0")
	viper.SetDefault("SHEET_TIMEOUT", "15s")
	viper.SetDefault("DATA_CACHE_TTL", "5m")
	viper.SetDefault("SAMPLE_SEED", 2025)
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	if config.SheetTimeout <= 0 || config.SheetTimeout > 30*time.Second {
		return nil, fmt.Errorf("SHEET_TIMEOUT must be in (0s, 30s], got %s", config.SheetTimeout)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
