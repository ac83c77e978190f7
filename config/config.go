package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver     string
	DBSource     string
	Port         string
	AppEnv       string
	LogLevel     string
	OIDCIssuer   string
	OIDCClientID string
	CORSOrigins  []string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBSource:     getEnv("DB_SOURCE", "appetit.db"),
		Port:         getEnv("PORT", "8080"),
		AppEnv:       getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		OIDCIssuer:   os.Getenv("OIDC_ISSUER"),
		OIDCClientID: os.Getenv("OIDC_CLIENT_ID"),
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func (c *Config) Development() bool {
	return c.AppEnv == "development" || c.AppEnv == "debug"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
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
