package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Redis (optional session/limiter storage)
	RedisURL string

	// SERP provider
	SerpAPIBaseURL string
	SerpAPIKey     string
	SerpCallDelay  time.Duration // fixed delay between outbound SERP calls
	SerpRetryMax   int

	// Search-analytics provider (search console style API)
	AnalyticsAPIBaseURL string
	AnalyticsAPIKey     string

	// Analysis behavior
	SimulatedOverlay bool // force simulated mode for every analysis run

	// Rank refresh job
	RankCheckInterval time.Duration
	RankCheckMaxAge   time.Duration

	// OIDC
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Email (SMTP) alerts
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPassword    string
	SMTPFrom        string
	SMTPFromName    string
	AlertRecipients string // Comma-separated addresses for degraded-run alerts

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/posifinder?sslmode=disable"),
		RedisURL:    getEnv("REDIS_URL", ""),

		SerpAPIBaseURL: getEnv("SERP_API_BASE_URL", "https://serpapi.example.com"),
		SerpAPIKey:     getEnv("SERP_API_KEY", ""),
		SerpCallDelay:  getDurationEnv("SERP_CALL_DELAY", 300*time.Millisecond),
		SerpRetryMax:   getIntEnv("SERP_RETRY_MAX", 3),

		AnalyticsAPIBaseURL: getEnv("ANALYTICS_API_BASE_URL", "https://analytics.example.com"),
		AnalyticsAPIKey:     getEnv("ANALYTICS_API_KEY", ""),

		SimulatedOverlay: getEnv("SIMULATED_OVERLAY", "") != "",

		RankCheckInterval: getDurationEnv("RANK_CHECK_INTERVAL", 1*time.Hour),
		RankCheckMaxAge:   getDurationEnv("RANK_CHECK_MAX_AGE", 24*time.Hour),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),

		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getIntEnv("SMTP_PORT", 587),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:        getEnv("SMTP_FROM", ""),
		SMTPFromName:    getEnv("SMTP_FROM_NAME", "PosiFinder"),
		AlertRecipients: getEnv("ALERT_RECIPIENTS", ""),

		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasSerpAPI reports whether a live SERP provider is configured. Without a
// key every analysis run starts directly in simulated mode.
func (c *Config) HasSerpAPI() bool {
	return c.SerpAPIKey != "" && !c.SimulatedOverlay
}

// IsEmailEnabled reports whether SMTP alerting is configured.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != "" && c.AlertRecipients != ""
}
