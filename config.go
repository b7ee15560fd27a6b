package daylog

import (
	"errors"
	"time"

	"github.com/lixenwraith/config"
)

// Config holds the construction options of a Log instance.
type Config struct {
	// Directory is the partition root; partitions are created beneath it
	// as <Directory>/<YYYY-MM-DD>/<segments...>.log
	Directory string `toml:"directory"`

	// ConsoleEnabled prints messages through the console window formatter
	ConsoleEnabled bool `toml:"console_enabled"`
	// FileEnabled appends encoded lines to the date-partitioned file
	FileEnabled bool `toml:"file_enabled"`

	// FileTimeoutMs closes an idle file handle after this many
	// milliseconds without an append; 0 closes after every flush
	FileTimeoutMs int64 `toml:"file_timeout_ms"`

	// TimestampFormat is the wall-clock layout of encoded lines
	TimestampFormat string `toml:"timestamp_format"`
	// ConsoleTarget selects "stdout" or "stderr" for the info sink
	ConsoleTarget string `toml:"console_target"`
	// Styled toggles terminal escape sequences on console output
	Styled bool `toml:"styled"`
	// InspectDepth bounds the depth of structured value dumps
	InspectDepth int64 `toml:"inspect_depth"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Directory:       "logs",
	ConsoleEnabled:  true,
	FileEnabled:     true,
	FileTimeoutMs:   int64(defaultFileTimeout / time.Millisecond),
	TimestampFormat: defaultTimeFormat,
	ConsoleTarget:   "stdout",
	Styled:          true,
	InspectDepth:    10,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// Clone returns a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	if c.Directory == "" {
		return fmtErrorf("directory cannot be empty")
	}
	if c.FileTimeoutMs < 0 {
		return fmtErrorf("file_timeout_ms cannot be negative: %d", c.FileTimeoutMs)
	}
	if c.TimestampFormat == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}
	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}
	if c.InspectDepth < 1 || c.InspectDepth > 32 {
		return fmtErrorf("inspect_depth must be between 1 and 32: %d", c.InspectDepth)
	}
	return nil
}

// FileTimeout returns the idle-close timeout as a duration.
func (c *Config) FileTimeout() time.Duration {
	return time.Duration(c.FileTimeoutMs) * time.Millisecond
}

// NewConfigFromFile loads configuration from a TOML file under the
// [daylog] table and returns a validated Config. A missing file yields
// the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()
	if err := loader.RegisterStruct("daylog.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if v, found := loader.Get("daylog.directory"); found {
		if s, ok := v.(string); ok {
			cfg.Directory = s
		}
	}
	if v, found := loader.Get("daylog.console_enabled"); found {
		if b, ok := v.(bool); ok {
			cfg.ConsoleEnabled = b
		}
	}
	if v, found := loader.Get("daylog.file_enabled"); found {
		if b, ok := v.(bool); ok {
			cfg.FileEnabled = b
		}
	}
	if v, found := loader.Get("daylog.file_timeout_ms"); found {
		if n, ok := v.(int64); ok {
			cfg.FileTimeoutMs = n
		}
	}
	if v, found := loader.Get("daylog.timestamp_format"); found {
		if s, ok := v.(string); ok {
			cfg.TimestampFormat = s
		}
	}
	if v, found := loader.Get("daylog.console_target"); found {
		if s, ok := v.(string); ok {
			cfg.ConsoleTarget = s
		}
	}
	if v, found := loader.Get("daylog.styled"); found {
		if b, ok := v.(bool); ok {
			cfg.Styled = b
		}
	}
	if v, found := loader.Get("daylog.inspect_depth"); found {
		if n, ok := v.(int64); ok {
			cfg.InspectDepth = n
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
