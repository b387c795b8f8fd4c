package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = NewLogger()

// NewLogger returns a JSON logrus logger whose level follows APP_ENV,
// overridden by LOG_LEVEL when that holds a valid level name
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(LevelForEnvironment(os.Getenv("APP_ENV")))
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// LevelForEnvironment maps an APP_ENV value to a log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "", "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	Environment string `json:"environment"`

	// Console server configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Remote pizza backend
	APIBaseURL     string        `json:"api_base_url"`
	RequestTimeout time.Duration `json:"request_timeout"`

	// Development stub backend
	StubPort   int    `json:"stub_port"`
	StubHost   string `json:"stub_host"`
	DBDriver   string `json:"db_driver"`
	DBPath     string `json:"db_path"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_sslmode"`

	// Logging configuration
	LogLevel string `json:"log_level"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, APIBaseURL: %s, RequestTimeout: %s, StubPort: %d, DBDriver: %s, DBPath: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s}",
		c.Environment, c.Port, c.Host, maskURL(c.APIBaseURL), c.RequestTimeout, c.StubPort, c.DBDriver, c.DBPath, c.DBHost, c.DBName, c.DBUser, c.LogLevel)
}

// maskURL masks the password in a URL carrying user info
func maskURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
		}
	}

	return parsed.String()
}

// ValidateBaseURL checks that raw is an absolute http(s) URL usable as the backend location
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return errors.New("PIZZA_API_URL must not be empty")
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("invalid PIZZA_API_URL format %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid PIZZA_API_URL scheme %q: expected http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid PIZZA_API_URL %q: host is required", raw)
	}
	return nil
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates formats like the ports and PIZZA_API_URL
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	stubPort, err := strconv.Atoi(GetEnvWithDefault("STUB_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid STUB_PORT: %w", err)
	}

	apiURL := strings.TrimRight(GetEnvWithDefault("PIZZA_API_URL", "http://localhost:8080"), "/")
	if err := ValidateBaseURL(apiURL); err != nil {
		return nil, err
	}

	timeoutSeconds := GetEnvAsType("REQUEST_TIMEOUT_SECONDS", 10)
	if timeoutSeconds <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive, got %d", timeoutSeconds)
	}

	config := &Config{
		Environment:    GetEnvWithDefault("APP_ENV", "development"),
		Port:           port,
		Host:           GetEnvWithDefault("APP_HOST", "localhost"),
		APIBaseURL:     apiURL,
		RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
		StubPort:       stubPort,
		StubHost:       GetEnvWithDefault("STUB_HOST", "localhost"),
		DBDriver:       GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBPath:         GetEnvWithDefault("DB_PATH", "pizza-manager.sqlite"),
		DBHost:         GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:         GetEnvWithDefault("DB_PORT", "5432"),
		DBName:         GetEnvWithDefault("DB_NAME", "pizzas"),
		DBUser:         GetEnvWithDefault("DB_USER", "user"),
		DBPassword:     GetEnvWithDefault("DB_PASSWORD", "password"),
		DBSSLMode:      GetEnvWithDefault("DB_SSLMODE", "disable"),
		LogLevel:       GetEnvWithDefault("LOG_LEVEL", "info"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			log.Warnf("Environment variable %s is not an int, using default value", key)
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
