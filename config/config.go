package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API            APIConfig
	Session        SessionConfig
	OAuth2External OAuth2ExternalConfig
	App            AppConfig
}

// APIConfig holds backend endpoint configuration
type APIConfig struct {
	BaseURL      string
	ImageBaseURL string
	Timeout      time.Duration
}

// SessionConfig holds session persistence and expiry-watch configuration
type SessionConfig struct {
	FilePath      string
	WarnWindow    time.Duration
	CheckInterval time.Duration
}

type OAuth2ExternalConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	config := &Config{}

	timeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}

	config.API = APIConfig{
		BaseURL:      getEnv("API_BASE_URL", "http://localhost:8080"),
		ImageBaseURL: getEnv("IMAGE_BASE_URL", "http://localhost:8080/uploads"),
		Timeout:      timeout,
	}

	warnWindow, err := time.ParseDuration(getEnv("SESSION_WARN_WINDOW", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_WARN_WINDOW: %w", err)
	}

	checkInterval, err := time.ParseDuration(getEnv("SESSION_CHECK_INTERVAL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_CHECK_INTERVAL: %w", err)
	}

	config.Session = SessionConfig{
		FilePath:      getEnv("SESSION_FILE_PATH", defaultSessionPath()),
		WarnWindow:    warnWindow,
		CheckInterval: checkInterval,
	}

	config.OAuth2External = OAuth2ExternalConfig{
		ClientID:     getEnv("EXTERNAL_CLIENT_ID", ""),
		ClientSecret: getEnv("EXTERNAL_CLIENT_SECRET", ""),
		RedirectURL:  getEnv("EXTERNAL_REDIRECT_URL", ""),
		Scopes:       getEnvSlice("EXTERNAL_SCOPES"),
	}

	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return config, nil
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".leavedesk-session.json"
	}
	return home + string(os.PathSeparator) + ".leavedesk-session.json"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
