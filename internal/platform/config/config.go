package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	LogLevel        slog.Level
	FrontendBaseURL string        `mapstructure:"FRONTEND_BASE_URL"`
	RateLimit       string        `mapstructure:"RATE_LIMIT"` // ulule/limiter format, e.g. "100-M"
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")

	// Environment variables override .env values, which override defaults.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	levelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(levelStr))); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel.String())
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}

	shutdownStr := viper.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownStr)
	if err != nil || shutdownTimeout <= 0 {
		shutdownTimeout = 15 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdownTimeout.String())
	}
	cfg.ShutdownTimeout = shutdownTimeout

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}
