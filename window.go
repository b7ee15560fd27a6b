package daylog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Window chrome pieces. Headers open a labeled block, footers close it,
// and the bar prefixes every line printed inside a block.
const (
	windowHeader   = "┌─ " // ┌─
	windowFooter   = "└─"  // └─
	windowBar      = "│ "  // │
	windowContinue = "↳ "  // ↳
)

// Console groups consecutive log lines from the same logical source into
// bordered blocks. It owns the process-wide "currently open window" label,
// so grouping across instances sharing one Console is best-effort: a window
// opened by one Log may be closed by output from another, and concurrent
// callers interleave into the same stream.
type Console struct {
	mu     sync.Mutex
	open   string
	out    io.Writer
	errOut io.Writer
	colors *palette
}

// ConsoleOption customizes a Console.
type ConsoleOption func(*Console)

// WithOutput redirects the informational sink.
func WithOutput(w io.Writer) ConsoleOption {
	return func(c *Console) { c.out = w }
}

// WithErrorOutput redirects the error sink.
func WithErrorOutput(w io.Writer) ConsoleOption {
	return func(c *Console) { c.errOut = w }
}

// WithStyling toggles terminal escape sequences.
func WithStyling(enable bool) ConsoleOption {
	return func(c *Console) { c.colors = newPalette(enable) }
}

// NewConsole creates a console window formatter writing to stdout/stderr.
func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		out:    os.Stdout,
		errOut: os.Stderr,
		colors: newPalette(true),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RenderOptions controls a single Render call.
type RenderOptions struct {
	// Continue keeps the currently open window regardless of label.
	Continue bool
	// IsError routes the lines through the error sink.
	IsError bool
}

// Render prints lines inside the window identified by label. Lines tagged
// with the currently open label continue the block without a new header;
// a differing label closes the open block and, when label is non-empty,
// opens a new one. Lines after the first carry a continuation prefix.
func (c *Console) Render(label string, lines []string, opts RenderOptions) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sink := c.out
	if opts.IsError {
		sink = c.errOut
	}

	continuing := (opts.Continue && c.open != "") || (label != "" && c.open == label)
	if !continuing {
		if c.open != "" {
			fmt.Fprintln(sink, c.colors.chrome(windowFooter))
			c.open = ""
		}
		if label != "" {
			fmt.Fprintln(sink, c.colors.chrome(windowHeader)+label)
			c.open = label
		}
	}

	for i, line := range lines {
		prefix := ""
		if c.open != "" {
			prefix = c.colors.chrome(windowBar)
		}
		if i > 0 {
			prefix += c.colors.chrome(windowContinue)
		}
		fmt.Fprintln(sink, prefix+line)
	}
}

// Close prints the footer of the open window, if any. Callers typically
// invoke it once at process shutdown to terminate the final block.
func (c *Console) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.open != "" {
		fmt.Fprintln(c.out, c.colors.chrome(windowFooter))
		c.open = ""
	}
}
