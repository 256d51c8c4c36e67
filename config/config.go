package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppPort string
	AppEnv  string

	DataDir string

	SessionSecret   string
	SessionTTLHours int
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),

		DataDir: get("DATA_DIR", "data"),

		SessionSecret:   get("SESSION_SECRET", "hlbh-quota-dev-secret"),
		SessionTTLHours: getInt("SESSION_TTL_HOURS", 8),
	}
}
