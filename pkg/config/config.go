package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	Chat    ChatConfig
	OTEL    OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CatalogConfig holds the campus catalog API configuration. The base URL is
// injected here and never read from a process-wide constant.
type CatalogConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// ChatConfig holds the conversational turn configuration
type ChatConfig struct {
	// UTCOffsetHours is the fixed offset applied to stored UTC event
	// timestamps to derive local calendar dates.
	UTCOffsetHours int

	// MaxResults caps event lists in replies; MaxRegisteredResults caps
	// the registered-events list.
	MaxResults           int
	MaxRegisteredResults int

	// RequireStudentID rejects turns without a student identity before
	// any classification happens.
	RequireStudentID bool
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 6000),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Catalog: CatalogConfig{
			BaseURL:        getEnv("CATALOG_BASE_URL", "http://localhost:5000/api"),
			TimeoutSeconds: getEnvAsInt("CATALOG_TIMEOUT_SECONDS", 10),
		},
		Chat: ChatConfig{
			UTCOffsetHours:       getEnvAsInt("CHAT_UTC_OFFSET_HOURS", 9),
			MaxResults:           getEnvAsInt("CHAT_MAX_RESULTS", 5),
			MaxRegisteredResults: getEnvAsInt("CHAT_MAX_REGISTERED_RESULTS", 6),
			RequireStudentID:     getEnvAsBool("CHAT_REQUIRE_STUDENT_ID", false),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "campus-assistant"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
