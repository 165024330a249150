package koanf_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/noahmasoud/autodoc/koanf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := koanf.Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Server.URL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())

	policy := cfg.RetryPolicy()
	assert.Equal(t, 500*time.Millisecond, policy.BaseDelay)
	assert.Equal(t, 8*time.Second, policy.MaxDelay)
	assert.Equal(t, 0.5, policy.JitterRatio)
	assert.Equal(t, 3, policy.MaxRetries)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autodoc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
url = "https://autodoc.internal"

[retry]
max_retries = 5

[review]
approved_by = "docs-team@example.com"
`), 0o644))

	cfg, err := koanf.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://autodoc.internal", cfg.Server.URL)
	assert.Equal(t, 5, cfg.Retry.MaxRetries)
	assert.Equal(t, "docs-team@example.com", cfg.Review.ApprovedBy)
	// Untouched sections keep their defaults.
	assert.Equal(t, 500, cfg.Retry.BaseDelayMS)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("AUTODOC_SERVER_URL", "https://env.example.com")

	path := filepath.Join(t.TempDir(), "autodoc.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nurl = \"https://file.example.com\"\n"), 0o644))

	cfg, err := koanf.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.Server.URL)
}

func TestLoad_EnvOverridesUnderscoredSections(t *testing.T) {
	t.Setenv("AUTODOC_RATE_LIMIT_RPS", "7")
	t.Setenv("AUTODOC_RATE_LIMIT_BURST", "3")
	t.Setenv("AUTODOC_RETRY_MAX_RETRIES", "9")

	cfg, err := koanf.Load("")
	require.NoError(t, err)

	assert.Equal(t, 7.0, cfg.RateLimit.RPS)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, 9, cfg.Retry.MaxRetries)
}

func TestLoad_UnknownEnvVarIgnored(t *testing.T) {
	t.Setenv("AUTODOC_RATE_LIMIT_UNKNOWN", "1")

	cfg, err := koanf.Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.RateLimit.RPS)
}

func TestLoad_DefaultPathFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autodoc.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\n"), 0o644))

	cfg, err := koanf.Load("", filepath.Join(dir, "missing.toml"), path)
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autodoc.toml")

	require.NoError(t, koanf.Init(path))

	cfg, err := koanf.Load(path)
	require.NoError(t, err)
	require.NoError(t, koanf.Validate(cfg))

	assert.Error(t, koanf.Init(path), "refuses to overwrite")
}

func TestValidate(t *testing.T) {
	cfg, err := koanf.Load("")
	require.NoError(t, err)
	require.NoError(t, koanf.Validate(cfg))

	cfg.UI.Theme = "solarized"
	assert.Error(t, koanf.Validate(cfg))

	cfg.UI.Theme = "dark"
	cfg.Server.URL = ""
	assert.Error(t, koanf.Validate(cfg))
}
