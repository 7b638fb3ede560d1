package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration, populated from the environment.
type Config struct {
	DatabaseURL   string
	Port          int
	JWTSecret     string
	TokenTTL      int // access token lifetime in seconds
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from environment variables. DATABASE_URL is the
// only hard requirement; everything else has development defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          8080,
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      3600,
		RedisAddr:     "localhost:6379",
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if ttlStr := os.Getenv("TOKEN_TTL_SECONDS"); ttlStr != "" {
		ttl, err := strconv.Atoi(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL_SECONDS %q: %w", ttlStr, err)
		}
		cfg.TokenTTL = ttl
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	return cfg, nil
}
