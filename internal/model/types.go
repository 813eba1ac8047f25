// Package model defines the domain types for the vocab CLI.
//
// All entities in this package are pure data structures with no external
// behavior beyond validation and formatting. Cards are created by the
// interactive prompt loop and persisted by the store; Options is the
// read-only record of parsed command-line flags.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Card is a single vocabulary flash card: a short title (the word or
// phrase being learned) paired with a free-form content body.
//
// ID and CreatedAt are assigned by the store when the card is appended.
// A Card that has not been persisted yet has an empty ID and a zero
// CreatedAt.
type Card struct {
	// ID is the unique identifier assigned at persistence time (UUID v4).
	ID string `json:"id,omitempty"`

	// Title is the front of the card, read as a single input line.
	Title string `json:"title"`

	// Content is the back of the card: free-form text accumulated until
	// the end-of-input sentinel.
	Content string `json:"content"`

	// CreatedAt is the UTC timestamp assigned when the card is appended
	// to the store.
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Validate checks that the card has the minimum content required for
// persistence. Titles must be non-empty after trimming; content may be
// empty (a title-only card is a legitimate reminder card).
func (c *Card) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("card title must not be empty")
	}
	return nil
}

// Persisted reports whether the card has been assigned an identity by
// the store.
func (c *Card) Persisted() bool {
	return c.ID != ""
}

// String returns a compact human-readable representation used in
// debug logging. The content body is elided to its length to keep
// log lines short.
func (c *Card) String() string {
	return fmt.Sprintf("%s (%d bytes)", c.Title, len(c.Content))
}

// Options is the flat record of parsed command-line flags. It is
// constructed once per run while cobra parses the argument list and is
// never mutated afterward; every field defaults to false.
type Options struct {
	// Colorize enables styled console output.
	Colorize bool `json:"colorize"`

	// Debug lowers the logging threshold to debug level.
	Debug bool `json:"debug"`

	// ManualInput enables the interactive card-entry loop on the root
	// command, mirroring the add subcommand.
	ManualInput bool `json:"manualInput"`
}

// ExitCode defines the CLI exit codes. These codes allow scripts and
// shells to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates a configuration file could not be
	// loaded or normalized.
	ExitConfigError ExitCode = 2

	// ExitStoreError indicates the card store could not be opened,
	// read, or appended to.
	ExitStoreError ExitCode = 3

	// ExitInputError indicates console input could not be read.
	ExitInputError ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
