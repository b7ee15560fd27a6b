package daylog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the terminal styles used by the console sink.
// When styling is disabled every method returns its input unchanged,
// which keeps test output and non-TTY streams free of escape sequences.
type palette struct {
	styled bool

	debug  lipgloss.Style
	info   lipgloss.Style
	warn   lipgloss.Style
	err    lipgloss.Style
	border lipgloss.Style
	source lipgloss.Style
}

func newPalette(styled bool) *palette {
	return &palette{
		styled: styled,
		debug:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		info:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		err:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		source: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// level returns the style associated with a numeric log level.
func (p *palette) level(level int64) lipgloss.Style {
	switch {
	case level <= LevelDebug:
		return p.debug
	case level <= LevelInfo:
		return p.info
	case level <= LevelWarn:
		return p.warn
	default:
		return p.err
	}
}

// paint wraps s in the level's escape sequences.
func (p *palette) paint(level int64, s string) string {
	if !p.styled {
		return s
	}
	return p.level(level).Render(s)
}

// chrome styles window headers, footers, and continuation prefixes.
func (p *palette) chrome(s string) string {
	if !p.styled {
		return s
	}
	return p.border.Render(s)
}

// highlight marks stack lines that reference the project's own source tree.
func (p *palette) highlight(s string) string {
	if !p.styled {
		return s
	}
	return p.source.Render(s)
}

// paintFailure colorizes an expanded failure message: the first line gets
// the error style, lines referencing project source get the source style.
func (p *palette) paintFailure(lines []string, modulePath string) []string {
	if !p.styled {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case i == 0:
			out[i] = p.err.Render(line)
		case modulePath != "" && strings.Contains(line, modulePath):
			out[i] = p.source.Render(line)
		default:
			out[i] = line
		}
	}
	return out
}
