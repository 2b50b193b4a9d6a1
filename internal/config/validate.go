package config

import (
	"fmt"
	"strings"
)

const (
	minPageSize = 1
	maxPageSize = 200
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.Cards.PageSize < minPageSize || c.Cards.PageSize > maxPageSize {
		return fmt.Errorf("cards.page_size must be in [%d, %d] (got %d)", minPageSize, maxPageSize, c.Cards.PageSize)
	}

	if c.Cache.KnownSize <= 0 {
		return fmt.Errorf("cache.known_size must be > 0 (got %d)", c.Cache.KnownSize)
	}
	if c.Cache.KnownTTL <= 0 {
		return fmt.Errorf("cache.known_ttl must be > 0 (got %v)", c.Cache.KnownTTL)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.PerSecond <= 0 {
			return fmt.Errorf("rate_limit.per_second must be > 0 (got %v)", c.RateLimit.PerSecond)
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
		}
	}

	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	if l.File != "" && l.MaxSizeMB <= 0 {
		return fmt.Errorf("max_size_mb must be > 0 when file is set (got %d)", l.MaxSizeMB)
	}
	return nil
}
