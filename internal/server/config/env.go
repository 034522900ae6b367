package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables. A local .env
// file, when present, is loaded first without overriding variables already
// set in the process environment.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.Addr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("SESSION_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionTokenValidity = d
		}
	}
	if v := os.Getenv("PENDING_SIGNUP_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.PendingSignupTTL = d
		}
	}
	if v := os.Getenv("PRIMARY_ORIGIN"); v != "" {
		config.PrimaryOrigin = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		config.AllowedOrigins = origins
	}
	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		config.ResendAPIKey = v
	}
	if v := os.Getenv("RESEND_ENDPOINT"); v != "" {
		config.ResendEndpoint = v
	}
	if v := os.Getenv("MAIL_FROM"); v != "" {
		config.MailFrom = v
	}
}
