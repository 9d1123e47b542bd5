package cache

import "time"

// Config holds cache construction settings.
type Config struct {
	// RedisURL selects the Redis backend when non-empty.
	RedisURL string

	// Prefix is prepended to all keys on the Redis backend.
	Prefix string

	// DefaultTTL is the default expiration for entries.
	DefaultTTL time.Duration

	// MaxSize limits the memory backend entry count (0 = unlimited).
	MaxSize int

	// CleanupInterval controls expired-entry sweeps on the memory backend.
	CleanupInterval time.Duration
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Prefix:          "diverkids:",
		DefaultTTL:      15 * time.Minute,
		MaxSize:         10000,
		CleanupInterval: time.Minute,
	}
}

// New creates a cache from the given config: Redis when RedisURL is set,
// the in-memory backend otherwise.
func New(cfg Config) (Cache, error) {
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = DefaultConfig().DefaultTTL
	}

	if cfg.RedisURL != "" {
		return NewRedisCacheFromURL(cfg.RedisURL, cfg.Prefix, cfg.DefaultTTL)
	}

	cleanup := cfg.CleanupInterval
	if cleanup <= 0 {
		cleanup = time.Minute
	}

	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      cfg.DefaultTTL,
		MaxSize:         cfg.MaxSize,
		CleanupInterval: cleanup,
	}), nil
}
