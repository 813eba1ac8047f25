// Package prompt implements the interactive card-entry loop.
//
// All console interaction goes through a Prompter wrapping an injected
// reader/writer pair, so the loop is fully testable with in-memory
// streams. The multi-line content read is a buffered read-until-sentinel
// with the sentinel an explicit parameter (defaulting to the terminal
// EOT byte, Ctrl+D) rather than a terminal-driven side effect.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmr-tortoise/vocab/internal/style"
)

// SentinelEOT is the default end-of-content byte: ASCII EOT, what a
// terminal delivers for Ctrl+D.
const SentinelEOT byte = 0x04

// Prompter performs blocking console reads for the card-entry loop.
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	color    style.Colorizer
	sentinel byte
}

// New creates a Prompter over the given streams. The colorizer styles
// the prompts; pass style.Plain() for unstyled output.
func New(in io.Reader, out io.Writer, colorizer style.Colorizer) *Prompter {
	return &Prompter{
		in:       bufio.NewReader(in),
		out:      out,
		color:    colorizer,
		sentinel: SentinelEOT,
	}
}

// SetSentinel overrides the end-of-content byte. Used by tests and by
// callers whose input can never contain a literal EOT.
func (p *Prompter) SetSentinel(b byte) {
	p.sentinel = b
}

// ReadTitle prints the title prompt and performs a blocking read of one
// input line. The trailing newline (and any carriage return) is
// stripped. Returns io.EOF when the stream ends before any input.
func (p *Prompter) ReadTitle() (string, error) {
	fmt.Fprint(p.out, p.color.Render(style.TagPrompt, "Title: "))

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return "", io.EOF
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading title: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadContent prints the content prompt and accumulates input until the
// sentinel byte or end of stream, whichever comes first. The sentinel
// is not part of the returned content.
func (p *Prompter) ReadContent() (string, error) {
	fmt.Fprintln(p.out, p.color.Render(style.TagPrompt, "Content (end with Ctrl+D):"))

	content, err := p.in.ReadString(p.sentinel)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading content: %w", err)
	}
	content = strings.TrimSuffix(content, string(p.sentinel))
	return content, nil
}

// Confirm asks a yes/no question and performs a blocking read of the
// answer line. A bare newline means the default. Answers beginning with
// "n" or "N" are negative; anything else is affirmative. Returns io.EOF
// when the stream is exhausted, leaving the caller to decide how to
// wind down.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "[Y/n]"
	if !def {
		hint = "[y/N]"
	}
	fmt.Fprint(p.out, p.color.Render(style.TagPrompt, fmt.Sprintf("%s %s ", question, hint)))

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
			return def, io.EOF
		}
		if !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("reading answer: %w", err)
		}
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return !strings.HasPrefix(strings.ToLower(answer), "n"), nil
}

// Say writes a styled line to the output stream.
func (p *Prompter) Say(tag style.Tag, format string, args ...any) {
	fmt.Fprintln(p.out, p.color.Render(tag, fmt.Sprintf(format, args...)))
}
