package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Remote service
	ServiceURI string

	// Password-grant credentials
	Username     string
	Password     string
	ClientID     string
	ClientSecret string

	// Logging
	LogLevel  string
	LogBodies bool
}

func Load() *Config {
	return &Config{
		ServiceURI:   getEnv("EASYFIN_SERVICE_URI", ""),
		Username:     getEnv("EASYFIN_USERNAME", ""),
		Password:     getEnv("EASYFIN_PASSWORD", ""),
		ClientID:     getEnv("EASYFIN_CLIENT_ID", ""),
		ClientSecret: getEnv("EASYFIN_CLIENT_SECRET", ""),
		LogLevel:     getEnv("EASYFIN_LOG_LEVEL", "info"),
		LogBodies:    getEnvBool("EASYFIN_LOG_BODIES", false),
	}
}

// Validate validates the configuration and returns an error if invalid.
// The service URI must be known before a client can be constructed.
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.ServiceURI) == "" {
		errors = append(errors, "EASYFIN_SERVICE_URI is required")
	} else if parsedURL, err := url.Parse(c.ServiceURI); err != nil {
		errors = append(errors, fmt.Sprintf("invalid service URI '%s': %v", c.ServiceURI, err))
	} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid service URI scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// ParseLevel maps the textual log level to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level '%s': must be one of [debug info warn error]", s)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
