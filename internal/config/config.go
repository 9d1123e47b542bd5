// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	APIURL        string `env:"DIVERKIDS_API_URL,required"` // Base URL of the DiverKids REST API
	DBPath        string `env:"DIVERKIDS_DB_PATH" envDefault:"./data/diverkids.db"`
	SessionSecret string `env:"DIVERKIDS_SESSION_SECRET,required"`
	ServerHost    string `env:"DIVERKIDS_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"DIVERKIDS_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"DIVERKIDS_ENV" envDefault:"development"`
	LogLevel      string `env:"DIVERKIDS_LOG_LEVEL" envDefault:"info"`

	// Cache configuration
	RedisURL     string `env:"DIVERKIDS_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"DIVERKIDS_CACHE_PREFIX" envDefault:"diverkids:"` // Redis key prefix
	CacheTTL     int    `env:"DIVERKIDS_CACHE_TTL" envDefault:"900"`        // Default cache TTL in seconds
	CacheMaxSize int    `env:"DIVERKIDS_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// CatalogRefreshSchedule is a cron expression for background catalog
	// cache refreshes. Empty disables the refresher.
	CatalogRefreshSchedule string `env:"DIVERKIDS_CATALOG_REFRESH" envDefault:"@every 10m"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("DIVERKIDS_API_URL must be an absolute URL, got %q", cfg.APIURL)
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("DIVERKIDS_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("DIVERKIDS_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("DIVERKIDS_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
