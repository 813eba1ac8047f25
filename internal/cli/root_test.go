// Package cli — root_test.go exercises flag parsing and command wiring
// through cobra's Execute, with console streams replaced by buffers.
package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/vocab/internal/model"
	"github.com/mmr-tortoise/vocab/internal/store"
)

// execute runs the CLI with the given stdin and arguments, returning
// the captured stdout, stderr, and command error.
func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	ResetFlags()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// SetArgs(nil) would fall back to os.Args, which under "go test"
	// contains the test binary's flags.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// TestRoot_NoArgsShowsHelp verifies the deliberate "show help when
// called bare" policy: no arguments is a successful run that prints
// usage text.
func TestRoot_NoArgsShowsHelp(t *testing.T) {
	stdout, _, err := execute(t, "")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "vocab")
}

// TestRoot_FlagParsing verifies -c and -m set their options and leave
// debug at its default.
func TestRoot_FlagParsing(t *testing.T) {
	t.Setenv("VOCAB_STORE_PATH", filepath.Join(t.TempDir(), "cards.jsonl"))

	// Empty stdin ends the manual-input loop immediately.
	_, _, err := execute(t, "", "-c", "-m")
	require.NoError(t, err)

	parsed := Options()
	assert.True(t, parsed.Colorize)
	assert.True(t, parsed.ManualInput)
	assert.False(t, parsed.Debug)
}

// TestRoot_UnknownFlag verifies an unrecognized flag is a parse error
// naming the flag.
func TestRoot_UnknownFlag(t *testing.T) {
	_, _, err := execute(t, "", "--bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--bogus")
}

// TestRoot_Version verifies --version prints the injected version string.
func TestRoot_Version(t *testing.T) {
	stdout, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, Version)
}

// TestRoot_ManualInputRunsLoop verifies -m drives a full card cycle on
// the root command and persists the card.
func TestRoot_ManualInputRunsLoop(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "cards.jsonl")
	t.Setenv("VOCAB_STORE_PATH", storePath)

	stdout, _, err := execute(t, "Hello\nWorld\x04y\nn\n", "-m")
	require.NoError(t, err)
	assert.Contains(t, stdout, `Saved card "Hello"`)

	cards := readStore(t, storePath)
	require.Len(t, cards, 1)
	assert.Equal(t, "Hello", cards[0].Title)
	assert.Equal(t, "World", cards[0].Content)
}

// readStore opens a store file and returns its cards.
func readStore(t *testing.T, path string) []model.Card {
	t.Helper()
	s, err := store.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	cards, err := s.List()
	require.NoError(t, err)
	return cards
}

// TestAdd_FullCycle verifies the add subcommand with an explicit
// --store flag: two cycles, one saved card each.
func TestAdd_FullCycle(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "decks", "cards.jsonl")

	input := "hola\nhello in Spanish\x04y\ny\nadiós\ngoodbye in Spanish\x04\nn\n"
	stdout, _, err := execute(t, input, "add", "--store", storePath)
	require.NoError(t, err)

	assert.Contains(t, stdout, `Saved card "hola"`)
	assert.Contains(t, stdout, `Saved card "adiós"`)

	cards := readStore(t, storePath)
	require.Len(t, cards, 2)
	assert.Equal(t, "hola", cards[0].Title)
	assert.Equal(t, "adiós", cards[1].Title)
}

// TestList_TextAndJSON verifies the list command in both output modes.
func TestList_TextAndJSON(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "cards.jsonl")

	s, err := store.OpenFile(storePath)
	require.NoError(t, err)
	_, err = s.Append(model.Card{Title: "Hello", Content: "World"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	stdout, _, err := execute(t, "", "list", "--store", storePath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 card(s)")
	assert.Contains(t, stdout, "Hello")
	assert.Contains(t, stdout, "  World")

	stdout, _, err = execute(t, "", "list", "--json", "--store", storePath)
	require.NoError(t, err)

	var cards []model.Card
	require.NoError(t, json.Unmarshal([]byte(stdout), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "Hello", cards[0].Title)
}

// TestList_Empty verifies the empty-store hint.
func TestList_Empty(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "cards.jsonl")

	stdout, _, err := execute(t, "", "list", "--store", storePath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No cards yet")
}
