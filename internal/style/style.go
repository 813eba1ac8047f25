// Package style provides the colorizer behind the --colorize flag.
//
// Styling is an injectable capability: callers hold a Colorizer and
// tag each piece of text with a semantic Tag. The lipgloss-backed
// implementation renders ANSI styling; the plain implementation is an
// identity passthrough, so output-producing code never branches on
// whether color is enabled.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Tag names the semantic role of a piece of console text.
type Tag int

const (
	// TagTitle marks card titles and section headings.
	TagTitle Tag = iota

	// TagPrompt marks questions awaiting user input.
	TagPrompt

	// TagSuccess marks confirmation of a completed operation.
	TagSuccess

	// TagError marks failure messages.
	TagError

	// TagMuted marks secondary detail such as timestamps and IDs.
	TagMuted
)

// Colorizer renders text under a semantic tag.
type Colorizer interface {
	Render(tag Tag, text string) string
}

// plain is the identity colorizer used when --colorize is off.
type plain struct{}

func (plain) Render(_ Tag, text string) string { return text }

// Plain returns a Colorizer that passes text through unchanged.
func Plain() Colorizer {
	return plain{}
}

// colored renders each tag with a fixed lipgloss style.
type colored struct {
	styles map[Tag]lipgloss.Style
}

// Colored returns the lipgloss-backed Colorizer.
func Colored() Colorizer {
	return &colored{
		styles: map[Tag]lipgloss.Style{
			TagTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7")),
			TagPrompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
			TagSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#94e2d5")),
			TagError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
			TagMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")),
		},
	}
}

func (c *colored) Render(tag Tag, text string) string {
	s, ok := c.styles[tag]
	if !ok {
		return text
	}
	return s.Render(text)
}

// ForEnabled picks the implementation matching the colorize option.
func ForEnabled(enabled bool) Colorizer {
	if enabled {
		return Colored()
	}
	return Plain()
}
