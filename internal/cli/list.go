// Package cli — list.go implements the "vocab list" command.
//
// The list command prints all cards in the store, in append order, as
// a text listing or a JSON array depending on the --json flag.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/vocab/internal/config"
	"github.com/mmr-tortoise/vocab/internal/logging"
	"github.com/mmr-tortoise/vocab/internal/model"
	"github.com/mmr-tortoise/vocab/internal/store"
	"github.com/mmr-tortoise/vocab/internal/style"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	// storePath overrides the card store location from settings.
	storePath string
}

// NewListCommand creates the "list" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewListCommand() *cobra.Command {
	flags := listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored flash cards",
		Long: `List all cards in the card store, oldest first.

Examples:
  vocab list
  vocab list --json
  vocab list --store ./decks/spanish.jsonl`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.storePath, "store", "", "Card store file (default: from settings)")

	return cmd
}

// runList reads the card store and prints its contents.
func runList(cmd *cobra.Command, flags listFlags) error {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "failed to load settings", err)
	}

	sink := logging.New(cmd.ErrOrStderr(), settings.Log.Level, opts.Debug)

	storePath := settings.Store.Path
	if flags.storePath != "" {
		storePath = flags.storePath
	}
	sink.Debug("reading card store", "path", storePath)

	cards, err := store.OpenFile(storePath)
	if err != nil {
		return err
	}
	defer func() { _ = cards.Close() }()

	all, err := cards.List()
	if err != nil {
		return err
	}
	sink.Debug("cards loaded", "count", len(all))

	if jsonOutput {
		return printCardsJSON(cmd.OutOrStdout(), all)
	}
	printCardsText(cmd.OutOrStdout(), all, style.ForEnabled(opts.Colorize))
	return nil
}

// printCardsJSON writes the cards as an indented JSON array.
func printCardsJSON(w io.Writer, cards []model.Card) error {
	if cards == nil {
		cards = []model.Card{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode cards", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// printCardsText writes a human-readable card listing.
func printCardsText(w io.Writer, cards []model.Card, colorizer style.Colorizer) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No cards yet. Run \"vocab add\" to create one.")
		return
	}

	fmt.Fprintf(w, "%d card(s)\n\n", len(cards))
	for _, card := range cards {
		fmt.Fprintln(w, colorizer.Render(style.TagTitle, card.Title))
		if card.Content != "" {
			fmt.Fprintln(w, indent(card.Content, "  "))
		}
		fmt.Fprintln(w, colorizer.Render(style.TagMuted,
			fmt.Sprintf("  added %s", card.CreatedAt.Format("2006-01-02 15:04"))))
		fmt.Fprintln(w)
	}
}

// indent prefixes every line of text with the given prefix. A trailing
// newline is dropped so the caller controls spacing.
func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
