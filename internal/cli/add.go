// Package cli — add.go implements the "vocab add" command.
//
// The add command runs the interactive card-entry loop: read a title
// line, accumulate content until the end-of-input sentinel, confirm the
// save, append to the card store, and repeat until the user declines to
// continue. The root command's --manual-input flag runs the same loop.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/vocab/internal/config"
	"github.com/mmr-tortoise/vocab/internal/logging"
	"github.com/mmr-tortoise/vocab/internal/model"
	"github.com/mmr-tortoise/vocab/internal/prompt"
	"github.com/mmr-tortoise/vocab/internal/store"
	"github.com/mmr-tortoise/vocab/internal/style"
)

// addFlags holds the flag values for the add command.
type addFlags struct {
	// storePath overrides the card store location from settings.
	storePath string
}

// NewAddCommand creates the "add" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewAddCommand() *cobra.Command {
	flags := addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Interactively create flash cards",
		Long: `Start the interactive card-entry loop.

Each cycle reads a card title (one line), then the card content
(free-form text ended with Ctrl+D), asks whether to save the card, and
finally whether to add another. Pressing Enter at a question accepts
its default.

Examples:
  vocab add
  vocab add --store ./decks/spanish.jsonl
  vocab -c add`,

		Args: cobra.NoArgs,

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.storePath, "store", "", "Card store file (default: from settings)")

	return cmd
}

// runAdd wires the prompt loop to the configured card store and runs it.
func runAdd(cmd *cobra.Command, flags addFlags) error {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "failed to load settings", err)
	}

	sink := logging.New(cmd.ErrOrStderr(), settings.Log.Level, opts.Debug)
	colorizer := style.ForEnabled(opts.Colorize)

	storePath := settings.Store.Path
	if flags.storePath != "" {
		storePath = flags.storePath
	}
	sink.Debug("opening card store", "path", storePath)

	cards, err := store.OpenFile(storePath)
	if err != nil {
		return err
	}
	defer func() { _ = cards.Close() }()

	prompter := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(), colorizer)
	loop := prompt.NewLoop(prompter, cards, sink, settings.Prompt.ContinueDefault)

	sink.Debug("starting card-entry loop", "continue_default", settings.Prompt.ContinueDefault)
	return loop.Run()
}
