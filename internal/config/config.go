// Package config loads application configuration from the environment and
// holds the hot-reloadable classifier rule set.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewRulesHolder),
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	DBType     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	// UploadMaxBytes caps the accepted PDF payload size.
	UploadMaxBytes int64
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:        getenv("APP_SERVICE", "facturas"),
		AppVersion:     getenv("APP_VERSION", "0.1.0"),
		Environment:    getenv("ENVIRONMENT", "development"),
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		DBType:         getenv("DATABASE_TYPE", "postgres"),
		DBHost:         getenv("DATABASE_HOST", "localhost"),
		DBPort:         getenv("DATABASE_PORT", "5432"),
		DBName:         getenv("DATABASE_NAME", "facturas"),
		DBUser:         getenv("DATABASE_USER", "postgres"),
		DBPassword:     getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:      getenv("DATABASE_SSLMODE", "disable"),
		UploadMaxBytes: getenvInt64("UPLOAD_MAX_BYTES", 10<<20),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}
