package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if err := c.Limits.validate(); err != nil {
		return fmt.Errorf("limits: %w", err)
	}
	if err := c.Eval.validate(); err != nil {
		return fmt.Errorf("eval: %w", err)
	}
	return nil
}

func (s ServerConfig) validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 || s.IdleTimeout <= 0 {
		return fmt.Errorf("read, write and idle timeouts must be > 0")
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be > 0 (got %v)", s.ShutdownTimeout)
	}
	return nil
}

func (l LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(strings.TrimSpace(l.Level))) {
		return fmt.Errorf("level must be one of %v (got %q)", logLevels, l.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(strings.TrimSpace(l.Format))) {
		return fmt.Errorf("format must be one of %v (got %q)", logFormats, l.Format)
	}
	return nil
}

func (r RateLimitConfig) validate() error {
	if r.Disabled {
		return nil
	}
	if r.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be > 0 (got %v)", r.RequestsPerSecond)
	}
	if r.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 (got %d)", r.Burst)
	}
	if r.IdleTTL <= 0 {
		return fmt.Errorf("idle_ttl must be > 0 (got %v)", r.IdleTTL)
	}
	return nil
}

func (l LimitsConfig) validate() error {
	if l.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", l.MaxBodyBytes)
	}
	if l.MaxTextRunes <= 0 {
		return fmt.Errorf("max_text_runes must be > 0 (got %d)", l.MaxTextRunes)
	}
	if l.MaxWords <= 0 {
		return fmt.Errorf("max_words must be > 0 (got %d)", l.MaxWords)
	}
	return nil
}

func (e EvalConfig) validate() error {
	if e.Baseline < 0 {
		return fmt.Errorf("baseline must be >= 0 (got %d)", e.Baseline)
	}
	if e.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", e.Workers)
	}
	return nil
}
