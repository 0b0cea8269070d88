package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = "8080"
	defaultDatabaseURL     = "paradise.db"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTAccessTTL    = 24 * time.Hour
	defaultMaxUploadSize   = 10 * 1024 * 1024 // 10 MiB
	defaultContactLimit    = 5
	defaultContactWindow   = time.Hour
	defaultUploadDir       = "./uploads"
	defaultEmailPort       = 587
	defaultAnalyticsMaxAge = 90 // days, retention sweep default
)

// Config holds every process-wide setting, built once at startup and passed
// by reference into the components that need it.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	AllowedHosts       []string
	CORSAllowedOrigins []string

	JWTSecret    string
	JWTAccessTTL time.Duration

	EmailHost        string
	EmailPort        int
	EmailUser        string
	EmailPassword    string
	DefaultFromEmail string
	AdminEmail       string

	TelegramBotToken string
	TelegramChatID   string

	UploadDir     string
	MaxUploadSize int64

	ContactRateLimit  int
	ContactRateWindow time.Duration

	EnableHealthCheck bool
	AnalyticsMaxAge   int
	LogLevel          string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      strings.ToLower(getEnv("APP_ENV", "dev")),
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),

		AllowedHosts:       splitList(os.Getenv("ALLOWED_HOSTS")),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		JWTSecret: strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),

		EmailHost:        getEnv("EMAIL_HOST", "smtp.gmail.com"),
		EmailUser:        os.Getenv("EMAIL_HOST_USER"),
		EmailPassword:    os.Getenv("EMAIL_HOST_PASSWORD"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),

		UploadDir: getEnv("UPLOAD_DIR", defaultUploadDir),
		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
	}

	cfg.DefaultFromEmail = getEnv("DEFAULT_FROM_EMAIL", cfg.EmailUser)
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", cfg.EmailUser)

	var err error
	if cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL); err != nil {
		return nil, err
	}
	if cfg.EmailPort, err = parseIntEnv("EMAIL_PORT", defaultEmailPort); err != nil {
		return nil, err
	}
	maxUpload, err := parseIntEnv("MAX_UPLOAD_SIZE", defaultMaxUploadSize)
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadSize = int64(maxUpload)
	if cfg.ContactRateLimit, err = parseIntEnv("CONTACT_RATE_LIMIT", defaultContactLimit); err != nil {
		return nil, err
	}
	if cfg.ContactRateWindow, err = parseDurationEnv("CONTACT_RATE_WINDOW", defaultContactWindow); err != nil {
		return nil, err
	}
	if cfg.AnalyticsMaxAge, err = parseIntEnv("ANALYTICS_MAX_AGE_DAYS", defaultAnalyticsMaxAge); err != nil {
		return nil, err
	}
	cfg.EnableHealthCheck = parseBoolEnv("ENABLE_HEALTH_CHECK", true)

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("config: JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

// TelegramConfigured reports whether the chat-bot sender has enough settings to run.
func (c *Config) TelegramConfigured() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

// EmailConfigured reports whether the SMTP senders have enough settings to run.
func (c *Config) EmailConfigured() bool {
	return c.EmailHost != "" && c.EmailUser != "" && c.AdminEmail != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s=%q: %w", key, raw, err)
	}
	return d, nil
}

func parseIntEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s=%q: %w", key, raw, err)
	}
	return n, nil
}

func parseBoolEnv(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return b
}
