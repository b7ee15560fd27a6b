package daylog

import "time"

// Builder provides a fluent API for constructing Log instances.
// It wraps a Config and provides chainable methods for setting values.
type Builder struct {
	cfg     *Config
	console *Console
	values  map[string]any
	err     error // Accumulate errors for deferred handling
}

// NewBuilder creates a new builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a Log for the given path segments.
func (b *Builder) Build(path ...string) (*Log, error) {
	if b.err != nil {
		return nil, b.err
	}

	l, err := New(b.cfg, path...)
	if err != nil {
		return nil, err
	}
	if b.console != nil {
		l.console = b.console
	}
	if b.values != nil {
		l.SetValues(b.values)
	}
	return l, nil
}

// Directory sets the partition root.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// EnableConsole toggles the console sink.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.ConsoleEnabled = enable
	return b
}

// EnableFile toggles the file sink.
func (b *Builder) EnableFile(enable bool) *Builder {
	b.cfg.FileEnabled = enable
	return b
}

// FileTimeout sets the idle-close timeout. Zero closes the handle after
// every flush.
func (b *Builder) FileTimeout(timeout time.Duration) *Builder {
	b.cfg.FileTimeoutMs = int64(timeout / time.Millisecond)
	return b
}

// TimestampFormat sets the wall-clock layout of encoded lines.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// ConsoleTarget selects "stdout" or "stderr" for the info sink.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// Styled toggles terminal escape sequences.
func (b *Builder) Styled(styled bool) *Builder {
	b.cfg.Styled = styled
	return b
}

// InspectDepth bounds the depth of structured value dumps.
func (b *Builder) InspectDepth(depth int64) *Builder {
	b.cfg.InspectDepth = depth
	return b
}

// Values seeds the instance's values bag.
func (b *Builder) Values(values map[string]any) *Builder {
	b.values = values
	return b
}

// Console injects a window formatter, replacing the process default.
func (b *Builder) Console(c *Console) *Builder {
	b.console = c
	return b
}

// Example usage:
//
//	logger, err := daylog.NewBuilder().
//		Directory("logs").
//		FileTimeout(0).
//		Values(map[string]any{"request_id": id}).
//		Build("api", "server")
//
//	if err == nil {
//		defer logger.Close()
//		logger.Info("server ready on {}", addr)
//	}
