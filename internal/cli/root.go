// Package cli implements the cobra-based CLI commands for vocab.
//
// Each subcommand (add, list, config) is defined in its own file within
// this package. This file defines the root command that carries the
// global flags and handles error-to-exit-code translation.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/vocab/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// opts is the record of parsed global flags, built once while cobra
	// parses the argument list and read-only afterward.
	opts model.Options

	// settingsPath is the optional settings file (--config).
	settingsPath string

	// jsonOutput switches command output to JSON for machine consumption.
	jsonOutput bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// Invoked bare (no flags, no subcommand), the root command prints its
// usage text and exits successfully. With --manual-input it runs the
// interactive card-entry loop, mirroring the add subcommand for users
// of the original flag-driven interface.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Manually create vocabulary flash cards",
		Long: `vocab is a small interactive tool for building a personal deck of
vocabulary flash cards. Each card is a title (the word or phrase) and a
free-form content body, entered on standard input and appended to a
local card store.

Run with --manual-input (or the add subcommand) to start the card-entry
loop. Without flags, this help text is shown.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats them instead.
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ManualInput {
				return runAdd(cmd, addFlags{})
			}
			// Bare invocation is a deliberate "show help" policy, not
			// an error.
			return cmd.Help()
		},
	}

	// PersistentFlags are inherited by all subcommands. This is the cobra
	// mechanism for global flags — any flag defined here is automatically
	// available in every subcommand without re-declaration.
	rootCmd.PersistentFlags().BoolVarP(&opts.Colorize, "colorize", "c", false, "Enable colored console output")
	rootCmd.PersistentFlags().BoolVarP(&opts.Debug, "debug", "d", false, "Enable verbose diagnostic logging")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "config", "", "Settings file path (YAML)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	// --manual-input only makes sense on the root command itself; the
	// add subcommand is its spelled-out form.
	rootCmd.Flags().BoolVarP(&opts.ManualInput, "manual-input", "m", false, "Start the interactive card-entry loop")

	// Register subcommands. Each subcommand is defined in its own file
	// (add.go, list.go, config.go) and returns a *cobra.Command.
	rootCmd.AddCommand(NewAddCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Options returns the parsed global flags.
func Options() model.Options {
	return opts
}

// ResetFlags restores the global flag state to its defaults. Cobra flag
// variables are package-level, so tests that execute commands back to
// back need a clean slate between runs.
func ResetFlags() {
	opts = model.Options{}
	settingsPath = ""
	jsonOutput = false
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors (including flag parse errors for unknown
// flags) default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message to stderr.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}
