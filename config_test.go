package daylog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig pins the documented defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "logs", cfg.Directory)
	assert.True(t, cfg.ConsoleEnabled)
	assert.True(t, cfg.FileEnabled)
	assert.Equal(t, int64(5000), cfg.FileTimeoutMs)
	assert.Equal(t, defaultTimeFormat, cfg.TimestampFormat)
	assert.NoError(t, cfg.Validate())

	// Mutating a copy must not leak into the defaults
	cfg.Directory = "elsewhere"
	assert.Equal(t, "logs", DefaultConfig().Directory)
}

// TestConfigValidate covers each rejection.
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty directory", func(c *Config) { c.Directory = "" }},
		{"negative timeout", func(c *Config) { c.FileTimeoutMs = -1 }},
		{"empty timestamp format", func(c *Config) { c.TimestampFormat = "" }},
		{"bad console target", func(c *Config) { c.ConsoleTarget = "syslog" }},
		{"zero inspect depth", func(c *Config) { c.InspectDepth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// TestNewConfigFromFile loads overrides from a TOML table.
func TestNewConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daylog.toml")
	content := `
[daylog]
  directory = "var/logs"
  console_enabled = false
  file_timeout_ms = 250
  console_target = "stderr"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "var/logs", cfg.Directory)
	assert.False(t, cfg.ConsoleEnabled)
	assert.Equal(t, int64(250), cfg.FileTimeoutMs)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)
	// Untouched keys keep defaults
	assert.True(t, cfg.FileEnabled)
}

// TestNewConfigFromFileMissing yields defaults for an absent file.
func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestNewConfigFromFileInvalid rejects values that fail validation.
func TestNewConfigFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daylog.toml")
	content := `
[daylog]
  file_timeout_ms = -5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewConfigFromFile(path)
	assert.Error(t, err)
}
