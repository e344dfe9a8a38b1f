package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Env      string
	LogLevel string

	// Telegram
	BotToken     string
	AdminGroupID int64
	PollTimeout  int

	// Persistence
	DatabaseURL string

	// Redis (dialog session state)
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	SessionTTL    time.Duration

	// Operational HTTP surface (health, metrics)
	OpsPort string

	// Listing pagination
	CarsPageSize int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		BotToken:      getEnv("TELEGRAM_BOT_TOKEN", ""),
		AdminGroupID:  getEnvAsInt64("ADMIN_GROUP_ID", 0),
		PollTimeout:   getEnvAsInt("POLL_TIMEOUT_SECONDS", 30),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		OpsPort:       getEnv("OPS_PORT", "8080"),
		CarsPageSize:  getEnvAsInt("CARS_PAGE_SIZE", 5),
	}
}

// Validate reports configuration the bot cannot start without.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return errors.New("config: TELEGRAM_BOT_TOKEN is required")
	}
	if c.DatabaseURL == "" {
		return errors.New("config: DATABASE_URL is required")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
