// Package koanf loads the autodoc client configuration with knadh/koanf.
package koanf

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/noahmasoud/autodoc"
)

// Config is the client configuration: defaults, then an optional TOML file,
// then AUTODOC_-prefixed environment variables, each layer overriding the
// previous one.
type Config struct {
	Server struct {
		URL       string `koanf:"url"`
		TimeoutMS int    `koanf:"timeout_ms"`
	} `koanf:"server"`

	Retry struct {
		BaseDelayMS int     `koanf:"base_delay_ms"`
		MaxDelayMS  int     `koanf:"max_delay_ms"`
		JitterRatio float64 `koanf:"jitter_ratio"`
		MaxRetries  int     `koanf:"max_retries"`
	} `koanf:"retry"`

	RateLimit struct {
		RPS   float64 `koanf:"rps"`
		Burst int     `koanf:"burst"`
	} `koanf:"rate_limit"`

	Review struct {
		ApprovedBy string `koanf:"approved_by"`
	} `koanf:"review"`

	UI struct {
		Theme string `koanf:"theme"` // "dark" or "light"
	} `koanf:"ui"`
}

// RetryPolicy converts the retry section into the domain policy.
func (c *Config) RetryPolicy() autodoc.RetryPolicy {
	return autodoc.RetryPolicy{
		BaseDelay:   time.Duration(c.Retry.BaseDelayMS) * time.Millisecond,
		MaxDelay:    time.Duration(c.Retry.MaxDelayMS) * time.Millisecond,
		JitterRatio: c.Retry.JitterRatio,
		MaxRetries:  c.Retry.MaxRetries,
	}
}

// Timeout returns the per-request client timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Server.TimeoutMS) * time.Millisecond
}

// defaults mirror the recommended retry tuning and a local backend.
var defaults = map[string]interface{}{
	"server.url":          "http://localhost:8000",
	"server.timeout_ms":   30000,
	"retry.base_delay_ms": 500,
	"retry.max_delay_ms":  8000,
	"retry.jitter_ratio":  0.5,
	"retry.max_retries":   3,
	"rate_limit.rps":      0.0, // disabled
	"rate_limit.burst":    1,
	"ui.theme":            "dark",
}

// envKeys maps AUTODOC_-prefixed environment variables to configuration
// keys. Section names and key names both contain underscores, so the
// mapping is explicit rather than derived by substitution. Unknown
// variables map to "" and are skipped by the provider.
var envKeys = map[string]string{
	"SERVER_URL":          "server.url",
	"SERVER_TIMEOUT_MS":   "server.timeout_ms",
	"RETRY_BASE_DELAY_MS": "retry.base_delay_ms",
	"RETRY_MAX_DELAY_MS":  "retry.max_delay_ms",
	"RETRY_JITTER_RATIO":  "retry.jitter_ratio",
	"RETRY_MAX_RETRIES":   "retry.max_retries",
	"RATE_LIMIT_RPS":      "rate_limit.rps",
	"RATE_LIMIT_BURST":    "rate_limit.burst",
	"REVIEW_APPROVED_BY":  "review.approved_by",
	"UI_THEME":            "ui.theme",
}

// Load reads the configuration. When configPath is empty the default
// locations are tried in order; a missing file is not an error.
func Load(configPath string, defaultPaths ...string) (*Config, error) {
	k := koanf.New(".")

	k.Load(confmap.Provider(defaults, "."), nil)

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", configPath, err)
		}
	} else {
		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
					return nil, fmt.Errorf("loading config %s: %w", path, err)
				}
				break
			}
		}
	}

	k.Load(env.Provider("AUTODOC_", ".", func(s string) string {
		return envKeys[strings.TrimPrefix(s, "AUTODOC_")]
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// Init writes a sample configuration file at configPath, refusing to
// overwrite an existing one.
func Init(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	sample := `# autodoc client configuration

[server]
url = "http://localhost:8000"
timeout_ms = 30000

[retry]
base_delay_ms = 500
max_delay_ms = 8000
jitter_ratio = 0.5
max_retries = 3

[rate_limit]
# rps = 5.0
# burst = 5

[review]
approved_by = "you@example.com"

[ui]
theme = "dark"
`
	return os.WriteFile(configPath, []byte(sample), 0o644)
}

// Validate checks that the configuration can build a working client.
func Validate(cfg *Config) error {
	if cfg.Server.URL == "" {
		return fmt.Errorf("server url is required")
	}
	if cfg.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must not be negative")
	}
	if cfg.Retry.JitterRatio < 0 {
		return fmt.Errorf("retry.jitter_ratio must not be negative")
	}
	switch cfg.UI.Theme {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be \"dark\" or \"light\", got %q", cfg.UI.Theme)
	}
	return nil
}
