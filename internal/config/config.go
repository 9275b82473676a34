package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	TokenTTL  time.Duration

	// Optional Twilio credentials; registration SMS is skipped when empty.
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

func Load() Config {
	return Config{
		Port: envString("PORT", "8080"),

		DBHost:     envString("DB_HOST", "localhost"),
		DBPort:     envString("DB_PORT", "5432"),
		DBUser:     envString("DB_USER", "postgres"),
		DBPassword: envString("DB_PASSWORD", "postgres"),
		DBName:     envString("DB_NAME", "votepress"),
		DBSSLMode:  envString("DB_SSLMODE", "disable"),

		JWTSecret: envString("JWT_SECRET", ""),
		TokenTTL:  envDuration("TOKEN_TTL", 30*time.Minute),

		TwilioAccountSID: envString("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  envString("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: envString("TWILIO_FROM_NUMBER", ""),
	}
}

// DSN builds the Postgres connection string from the DB_* settings.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
