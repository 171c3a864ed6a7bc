package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port        string
	DatabaseURL string
	// Feed
	Feed        string
	FeedBaseURL string
	FeedTimeout time.Duration
	// Reconciliation
	UTCOffsetMin int
	SyncEvery    time.Duration
	// Sync guard (optional, "none" or "redis")
	SyncGuard     string
	GuardTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// ConfigError reports a missing or invalid required setting.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s is required", e.Field)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:           getEnv("ENV", "local"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		Feed:          getEnv("FEED", "bvl"),
		FeedBaseURL:   getEnv("BVL_API_BASE", "https://dataondemand.bvl.com.pe/v1/stock-quote"),
		FeedTimeout:   time.Duration(atoiDef(getEnv("FEED_TIMEOUT_MS", "4000"), 4000)) * time.Millisecond,
		UTCOffsetMin:  atoiDef(getEnv("UTC_OFFSET_MIN", "-300"), -300),
		SyncEvery:     time.Duration(atoiDef(getEnv("SYNC_EVERY_MS", "900000"), 900000)) * time.Millisecond,
		SyncGuard:     getEnv("SYNC_GUARD", "none"),
		GuardTTL:      time.Duration(atoiDef(getEnv("SYNC_GUARD_TTL_MS", "600000"), 600000)) * time.Millisecond,
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       atoiDef(getEnv("REDIS_DB", "0"), 0),
	}
}

// Validate fails fast on missing required settings instead of letting the
// first datastore or feed call surface them.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return &ConfigError{Field: "DATABASE_URL"}
	}
	if c.FeedBaseURL == "" {
		return &ConfigError{Field: "BVL_API_BASE"}
	}
	return nil
}
