package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath string
	SeedPath     string
}

// Load reads configuration from .env (if present) and the environment.
// The returned value carries all configuration; there is no process-wide
// config state.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DatabasePath: GetEnv("GOALZ_DB_PATH", "db/goalz.db"),
		SeedPath:     GetEnv("GOALZ_SEED_PATH", ""),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
