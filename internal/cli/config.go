// Package cli — config.go implements the "vocab config" commands.
//
// "config show <path>" loads a structured config file (YAML or JSONC)
// through the normalizer and prints the resulting tree, either as the
// indented text rendering or as JSON.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/vocab/internal/config"
	"github.com/mmr-tortoise/vocab/internal/logging"
	"github.com/mmr-tortoise/vocab/internal/model"
)

// NewConfigCommand creates the "config" parent command.
// It is called from NewRootCommand to register as a subcommand.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration files",
	}

	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

// newConfigShowCommand creates the "config show" subcommand.
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <path>",
		Short: "Load a config file and print its normalized tree",
		Long: `Load a YAML or JSONC configuration file, normalize it into a tree of
mappings, sequences, and scalars, and print the result.

Examples:
  vocab config show deck.yaml
  vocab config show --json settings.jsonc`,

		// Args validates that exactly one positional argument (the path)
		// is provided.
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, args[0])
		},
	}
}

// runConfigShow loads, normalizes, and prints a config file.
func runConfigShow(cmd *cobra.Command, path string) error {
	sink := logging.New(cmd.ErrOrStderr(), "info", opts.Debug)
	sink.Debug("loading config file", "path", path)

	value, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	sink.Debug("config normalized", "kind", value.Kind().String())

	if jsonOutput {
		data, err := json.MarshalIndent(value.Interface(), "", "  ")
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to encode config", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), value.Render())
	return nil
}
