// Package model defines the domain types and value objects for the
// vocab CLI.
//
// This package contains pure data structures with no external
// dependencies. Card is the central entity; Options records parsed
// command-line flags for the lifetime of a run.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
