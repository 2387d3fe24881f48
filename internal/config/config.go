package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Sanity   SanityConfig
	Coupon   CouponConfig
	Cart     CartConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// SanityConfig points at the content repository project. When Token is
// empty the server runs against the seeded in-memory repository instead.
type SanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
}

// CouponConfig holds the single-tier coupon allow-list: one valid code
// granting a fixed percentage off.
type CouponConfig struct {
	ValidCode       string
	DiscountPercent int
}

type CartConfig struct {
	StoragePath string // file backing persisted cart state
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Sanity: SanityConfig{
			ProjectID:  getEnv("SANITY_PROJECT_ID", ""),
			Dataset:    getEnv("SANITY_DATASET", "production"),
			APIVersion: getEnv("SANITY_API_VERSION", "2021-08-31"),
			Token:      getEnv("SANITY_API_TOKEN", ""),
			UseCDN:     getEnvAsBool("SANITY_USE_CDN", false),
		},
		Coupon: CouponConfig{
			ValidCode:       getEnv("COUPON_CODE", "pakistan"),
			DiscountPercent: getEnvAsInt("COUPON_DISCOUNT", 15),
		},
		Cart: CartConfig{
			StoragePath: getEnv("CART_STORAGE_PATH", "cart-data.json"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Sanity.Token != "" && c.Sanity.ProjectID == "" {
		return fmt.Errorf("SANITY_PROJECT_ID is required when SANITY_API_TOKEN is set")
	}

	if c.Coupon.DiscountPercent < 0 || c.Coupon.DiscountPercent > 100 {
		return fmt.Errorf("COUPON_DISCOUNT must be between 0 and 100, got %d", c.Coupon.DiscountPercent)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
