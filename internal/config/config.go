package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DBDSN            string
	TokenSecret      string
	StripeKey        string
	StripeBaseURL    string
	Currency         string
	CORSOrigins      string
	LogFile          string
	LogLevel         string
	RateLimit        int
	ProcessorTimeout time.Duration
}

// Load reads a .env file when one exists, then the environment.
func Load() Config {
	_ = godotenv.Load() // fine when missing

	cfg := Config{
		Port:             getenv("PORT", "5000"),
		DBDSN:            getenv("DB_DSN", "employeehub.db"),
		TokenSecret:      os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeKey:        os.Getenv("STRIPE_SECRET_KEY"),
		StripeBaseURL:    getenv("STRIPE_API_BASE", "https://api.stripe.com"),
		Currency:         getenv("PAYMENT_CURRENCY", "usd"),
		CORSOrigins:      getenv("CORS_ORIGINS", "*"),
		LogFile:          os.Getenv("LOG_FILE"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		RateLimit:        120,
		ProcessorTimeout: 15 * time.Second,
	}
	// 0 disables the limiter; negative values are kept so Validate rejects them
	if n, err := strconv.Atoi(os.Getenv("RATE_LIMIT_PER_MIN")); err == nil {
		cfg.RateLimit = n
	}
	if d, err := time.ParseDuration(os.Getenv("PROCESSOR_TIMEOUT")); err == nil && d > 0 {
		cfg.ProcessorTimeout = d
	}
	return cfg
}

// Validate reports settings the server cannot start without.
func (c Config) Validate() error {
	var errs []error
	if c.TokenSecret == "" {
		errs = append(errs, errors.New("ACCESS_TOKEN_SECRET is required"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if c.RateLimit < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MIN must not be negative"))
	}
	return errors.Join(errs...)
}

// Fields lists the effective settings for logging, with secrets masked.
func (c Config) Fields() map[string]any {
	return map[string]any{
		"port":         c.Port,
		"db_dsn":       c.DBDSN,
		"token_secret": mask(c.TokenSecret),
		"stripe_key":   mask(c.StripeKey),
		"stripe_base":  c.StripeBaseURL,
		"currency":     c.Currency,
		"cors_origins": c.CORSOrigins,
		"log_file":     c.LogFile,
		"log_level":    c.LogLevel,
		"rate_limit":   c.RateLimit,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "****"
}
