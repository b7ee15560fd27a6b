package daylog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// projectDir anchors stack-line highlighting to the consuming project.
var projectDir, _ = os.Getwd()

// Log appends leveled messages to a date-partitioned file and renders
// them to the console inside a window labeled by the instance path. It
// also carries a mutable bag of debug values that is dumped automatically
// on error. Instances are long-lived; the caller releases the file handle
// with Close. Two instances must not target the same path.
type Log struct {
	segments []string
	label    string
	cfg      *Config
	console  *Console
	w        *writer
	inspect  *spew.ConfigState
	now      func() time.Time

	valuesMu sync.Mutex
	values   map[string]any
}

// New creates a Log for the given path segments. A nil cfg uses defaults.
// Segments may contain "/" separators; the final segment names the file.
func New(cfg *Config, path ...string) (*Log, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg = cfg.Clone()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	segments := splitSegments(path)
	if len(segments) == 0 {
		return nil, fmtErrorf("log path cannot be empty")
	}

	// The shared console keeps one window stream across instances; a
	// config that diverges from the default target or styling gets its own.
	console := Default()
	if cfg.Styled != defaultConfig.Styled || cfg.ConsoleTarget != defaultConfig.ConsoleTarget {
		console = ConsoleFromConfig(cfg)
	}

	return &Log{
		segments: segments,
		label:    strings.Join(segments, "/"),
		cfg:      cfg,
		console:  console,
		w:        newWriter(cfg.Directory, segments, cfg.FileTimeout()),
		inspect:  newInspector(int(cfg.InspectDepth)),
		now:      time.Now,
		values:   make(map[string]any),
	}, nil
}

// splitSegments normalizes path arguments into clean segments.
func splitSegments(path []string) []string {
	var segments []string
	for _, p := range path {
		for _, s := range strings.Split(p, "/") {
			if s != "" && s != "." {
				segments = append(segments, s)
			}
		}
	}
	return segments
}

// Debug logs a message at debug level.
func (l *Log) Debug(message any, args ...any) {
	l.emit(0, LevelDebug, message, args)
}

// Info logs a message at info level.
func (l *Log) Info(message any, args ...any) {
	l.emit(0, LevelInfo, message, args)
}

// Warn logs a message at warning level.
func (l *Log) Warn(message any, args ...any) {
	l.emit(0, LevelWarn, message, args)
}

// Error logs a message at error level and dumps the instance values.
func (l *Log) Error(message any, args ...any) {
	l.emit(0, LevelError, message, args)
}

// SetValues merges partial into the instance's values bag.
func (l *Log) SetValues(partial map[string]any) {
	l.valuesMu.Lock()
	defer l.valuesMu.Unlock()
	for k, v := range partial {
		l.values[k] = v
	}
}

// Values returns a snapshot of the values bag.
func (l *Log) Values() map[string]any {
	return l.snapshotValues()
}

// DumpValues prints the values bag to the console sink only.
func (l *Log) DumpValues() {
	snapshot := l.snapshotValues()
	l.console.Render(l.label, []string{valuesMarker + " " + l.inspect.Sprintf("%+v", snapshot)}, RenderOptions{})
}

// Close force-flushes pending lines and releases the file handle.
// Idempotent; safe with no open handle.
func (l *Log) Close() error {
	if l.w == nil {
		return nil
	}
	return l.w.close()
}

// AbsolutePath returns the absolute file path for today's partition.
func (l *Log) AbsolutePath() string {
	path := l.w.partitionPath(l.now().Format(partitionFormat))
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// emit is the single sink behind every level method. extraSkip counts
// wrapping frames beyond the level method itself, so the caller tag
// lands on the call site of the outermost wrapper. Failures inside
// formatting or writing are reported to the console error sink; a
// logging call never panics or returns an error.
func (l *Log) emit(extraSkip int, level int64, raw any, args []any) {
	defer func() {
		if r := recover(); r != nil {
			l.console.Render("", []string{fmt.Sprintf("daylog: formatting failed: %v", r)}, RenderOptions{IsError: true})
		}
	}()

	msg := resolveMessage(raw)
	// A failure message is an error no matter which level method was called
	isError := level >= LevelError || msg.kind == kindFailure

	tag := callerTag(2 + extraSkip)
	ts := l.now()
	text := msg.render(args, l.inspect)

	if l.cfg.ConsoleEnabled {
		l.renderConsole(level, isError, msg.kind, text)
	}

	if l.cfg.FileEnabled && l.w != nil {
		buf := encodeLine(nil, ts, l.cfg.TimestampFormat, level, tag, text)
		// The values dump belongs to the error level; a failure message
		// logged lower keeps the single line on disk.
		if level >= LevelError {
			buf = encodeValues(buf, ts, l.cfg.TimestampFormat, l.snapshotValues(), l.inspect)
		}
		if err := l.w.append(buf); err != nil {
			l.console.Render("", []string{fmt.Sprintf("daylog: %v", err)}, RenderOptions{IsError: true})
		}
	}
}

// renderConsole colorizes the message and hands it to the window
// formatter, followed by the values dump on error.
func (l *Log) renderConsole(level int64, isError bool, kind messageKind, text string) {
	lines := strings.Split(text, "\n")
	if kind == kindFailure {
		lines = l.console.colors.paintFailure(lines, projectDir)
	} else if len(lines) > 0 {
		colorLevel := level
		if isError {
			colorLevel = LevelError
		}
		painted := make([]string, len(lines))
		painted[0] = l.console.colors.paint(colorLevel, lines[0])
		copy(painted[1:], lines[1:])
		lines = painted
	}

	l.console.Render(l.label, lines, RenderOptions{IsError: isError})
	if isError {
		if snapshot := l.snapshotValues(); len(snapshot) > 0 {
			dump := valuesMarker + " " + l.inspect.Sprintf("%+v", snapshot)
			l.console.Render(l.label, []string{dump}, RenderOptions{Continue: true, IsError: true})
		}
	}
}

func (l *Log) snapshotValues() map[string]any {
	l.valuesMu.Lock()
	defer l.valuesMu.Unlock()
	snapshot := make(map[string]any, len(l.values))
	for k, v := range l.values {
		snapshot[k] = v
	}
	return snapshot
}

var (
	defaultConsoleOnce sync.Once
	defaultConsole     *Console
)

// Default returns the process-wide console shared by every Log that was
// not given its own. Ownership of window state sits here: all instances
// rendering through it interleave into one window stream.
func Default() *Console {
	defaultConsoleOnce.Do(func() {
		defaultConsole = NewConsole()
	})
	return defaultConsole
}

// ConsoleFromConfig builds a private console honoring the config's
// target and styling flags.
func ConsoleFromConfig(cfg *Config) *Console {
	opts := []ConsoleOption{WithStyling(cfg.Styled)}
	if cfg.ConsoleTarget == "stderr" {
		opts = append(opts, WithOutput(os.Stderr))
	}
	return NewConsole(opts...)
}

// std is the console-only instance behind the package-level statics.
var (
	stdOnce sync.Once
	stdLog  *Log
)

func std() *Log {
	stdOnce.Do(func() {
		cfg := DefaultConfig()
		cfg.FileEnabled = false
		stdLog = &Log{
			cfg:     cfg,
			console: Default(),
			inspect: newInspector(int(cfg.InspectDepth)),
			now:     time.Now,
			values:  make(map[string]any),
		}
	})
	return stdLog
}

// Package-level statics address the console sink only: no file, no
// instance values, no window label.

// Debug prints a debug message to the shared console.
func Debug(message any, args ...any) { std().emit(0, LevelDebug, message, args) }

// Info prints an info message to the shared console.
func Info(message any, args ...any) { std().emit(0, LevelInfo, message, args) }

// Warn prints a warning message to the shared console.
func Warn(message any, args ...any) { std().emit(0, LevelWarn, message, args) }

// Error prints an error message to the shared console.
func Error(message any, args ...any) { std().emit(0, LevelError, message, args) }
