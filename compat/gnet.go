package compat

import (
	"fmt"
	"os"

	"github.com/fenwrith/daylog"
)

// GnetAdapter wraps a daylog.Log to implement gnet's logging.Logger
// interface.
type GnetAdapter struct {
	log          *daylog.Log
	fatalHandler func(msg string)
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(log *daylog.Log, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		log: log,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}
	for _, opt := range opts {
		opt(adapter)
	}
	return adapter
}

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.log.Debug(fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.log.Info(fmt.Sprintf(format, args...))
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.log.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.log.Error(fmt.Sprintf(format, args...))
}

// Fatalf logs at error level, flushes the file sink, and triggers the
// fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.log.Error(msg)

	// Ensure the line reaches disk before exit
	_ = a.log.Close()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
