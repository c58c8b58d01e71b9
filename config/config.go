package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment leaves a value unset.
const (
	DefaultPort             = "8080"
	DefaultTimezone         = "America/New_York"
	DefaultSessionTTL       = 2 * time.Hour
	DefaultAssistantTimeout = 60 * time.Second
	DefaultReminderTimeout  = 15 * time.Second
	DefaultEmailProvider    = "noop"
	DefaultAWSRegion        = "us-east-1"

	developmentSessionSecret = "development-session-secret"
)

// Config holds all configuration for the application
type Config struct {
	Environment      string
	Port             string
	Timezone         string
	Location         *time.Location
	AllowedOrigins   []string
	PublicBaseURL    string
	SessionSecret    string
	SessionTTL       time.Duration
	GeminiAPIKey     string
	GeminiModel      string
	AssistantTimeout time.Duration
	ReminderTimeout  time.Duration
	Email            EmailConfig
}

// EmailConfig selects and configures the reminder mail provider.
type EmailConfig struct {
	Provider              string
	FromAddress           string
	FromName              string
	AWSRegion             string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env, err := loadDotEnv()
	if err != nil {
		log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
	}
	return FromLookup(env, os.LookupEnv)
}

// Timezone returns TIMEZONE as Load would resolve it, including .env, or
// DefaultTimezone when unset.
func Timezone() string {
	_, _ = loadDotEnv()
	if tz := strings.TrimSpace(os.Getenv("TIMEZONE")); tz != "" {
		return tz
	}
	return DefaultTimezone
}

// loadDotEnv reads .env outside production and returns GO_ENV.
// In production .env might not exist and system environment variables are used.
func loadDotEnv() (string, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	if env == "production" {
		return env, nil
	}
	return env, godotenv.Load()
}

// FromLookup builds the configuration from lookup without touching .env files.
func FromLookup(env string, lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Environment:   env,
		Port:          get("PORT", DefaultPort),
		Timezone:      get("TIMEZONE", DefaultTimezone),
		SessionSecret: get("SESSION_SECRET", ""),
		GeminiAPIKey:  get("GEMINI_API_KEY", ""),
		GeminiModel:   get("GEMINI_MODEL", ""),
		Email: EmailConfig{
			Provider:           strings.ToLower(get("EMAIL_PROVIDER", DefaultEmailProvider)),
			FromAddress:        get("EMAIL_FROM_ADDRESS", ""),
			FromName:           get("EMAIL_FROM_NAME", "Citizenship Bridge"),
			AWSRegion:          get("AWS_REGION", DefaultAWSRegion),
			AWSAccessKeyID:     get("AWS_ACCESS_KEY_ID", ""),
			AWSSecretAccessKey: get("AWS_SECRET_ACCESS_KEY", ""),
		},
	}
	cfg.PublicBaseURL = strings.TrimSuffix(get("PUBLIC_BASE_URL", "http://localhost:"+cfg.Port), "/")
	cfg.AllowedOrigins = splitList(get("ALLOWED_ORIGINS", cfg.PublicBaseURL))

	var errs []error
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}
	cfg.Location = loc

	if cfg.SessionTTL, err = parseDuration(get("SESSION_TTL", ""), DefaultSessionTTL); err != nil {
		errs = append(errs, fmt.Errorf("SESSION_TTL: %w", err))
	}
	if cfg.AssistantTimeout, err = parseDuration(get("ASSISTANT_TIMEOUT", ""), DefaultAssistantTimeout); err != nil {
		errs = append(errs, fmt.Errorf("ASSISTANT_TIMEOUT: %w", err))
	}
	if cfg.ReminderTimeout, err = parseDuration(get("REMINDER_TIMEOUT", ""), DefaultReminderTimeout); err != nil {
		errs = append(errs, fmt.Errorf("REMINDER_TIMEOUT: %w", err))
	}
	if s := get("SES_INSECURE_SKIP_VERIFY", ""); s != "" {
		if cfg.Email.SESInsecureSkipVerify, err = strconv.ParseBool(s); err != nil {
			errs = append(errs, fmt.Errorf("SES_INSECURE_SKIP_VERIFY: %w", err))
		}
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			errs = append(errs, errors.New("SESSION_SECRET is required in production"))
		} else {
			cfg.SessionSecret = developmentSessionSecret
		}
	}
	if cfg.Email.Provider == "ses" && cfg.Email.FromAddress == "" {
		errs = append(errs, errors.New("EMAIL_FROM_ADDRESS is required when EMAIL_PROVIDER is ses"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
