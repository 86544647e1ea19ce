// Package config loads server settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime settings.
type Config struct {
	Port                 string
	GinMode              string
	DatabaseURL          string
	EnableDB             bool
	AutoMigrate          bool
	LogLevel             string
	LogFormat            string
	StaticDir            string
	FAQFile              string
	ChatSessionCacheSize int
	ChatMaxMessages      int
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cacheSize, err := strconv.Atoi(getEnv("CHAT_SESSION_CACHE_SIZE", "500"))
	if err != nil || cacheSize <= 0 {
		return nil, fmt.Errorf("CHAT_SESSION_CACHE_SIZE must be a positive integer")
	}

	maxMessages, err := strconv.Atoi(getEnv("CHAT_MAX_MESSAGES", "200"))
	if err != nil || maxMessages <= 0 {
		return nil, fmt.Errorf("CHAT_MAX_MESSAGES must be a positive integer")
	}

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		GinMode:              getEnv("GIN_MODE", "release"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		EnableDB:             strings.EqualFold(getEnv("ENABLE_DB", "false"), "true"),
		AutoMigrate:          strings.EqualFold(getEnv("AUTO_MIGRATE", "true"), "true"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "text"),
		StaticDir:            os.Getenv("STATIC_DIR"),
		FAQFile:              os.Getenv("FAQ_FILE"),
		ChatSessionCacheSize: cacheSize,
		ChatMaxMessages:      maxMessages,
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
