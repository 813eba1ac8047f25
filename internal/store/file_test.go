package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/vocab/internal/model"
)

// openTestStore opens a FileStore in a temp dir and registers cleanup.
func openTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := OpenFile(filepath.Join(t.TempDir(), "decks", "cards.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestFileStore_AppendAssignsIdentity verifies Append fills ID and
// CreatedAt and leaves title/content verbatim.
func TestFileStore_AppendAssignsIdentity(t *testing.T) {
	s := openTestStore(t)

	saved, err := s.Append(model.Card{Title: "Hello", Content: "World"})
	require.NoError(t, err)

	assert.True(t, saved.Persisted())
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, "Hello", saved.Title)
	assert.Equal(t, "World", saved.Content)
}

// TestFileStore_RoundTrip verifies List returns appended cards in
// order with unique IDs.
func TestFileStore_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	titles := []string{"hola", "bonjour", "ciao"}
	for _, title := range titles {
		_, err := s.Append(model.Card{Title: title, Content: "greeting"})
		require.NoError(t, err)
	}

	cards, err := s.List()
	require.NoError(t, err)
	require.Len(t, cards, 3)

	seen := make(map[string]bool)
	for i, card := range cards {
		assert.Equal(t, titles[i], card.Title)
		assert.False(t, seen[card.ID], "duplicate ID %s", card.ID)
		seen[card.ID] = true
	}
}

// TestFileStore_AppendRejectsInvalid verifies the title precondition
// holds at the persistence boundary too.
func TestFileStore_AppendRejectsInvalid(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Append(model.Card{Title: "  ", Content: "body"})
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitStoreError, cliErr.Code)

	cards, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, cards)
}

// TestFileStore_ListEmpty verifies a fresh store lists no cards.
func TestFileStore_ListEmpty(t *testing.T) {
	s := openTestStore(t)

	cards, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, cards)
}

// TestFileStore_ListMalformedLine verifies external corruption is
// reported with the offending line number.
func TestFileStore_ListMalformedLine(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Append(model.Card{Title: "ok"})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(s.Path(), []byte("{\"title\":\"ok\"}\nnot json\n"), 0o644))

	_, err = s.List()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":2")
}

// TestFileStore_ReopenPreserves verifies appends survive close/reopen.
func TestFileStore_ReopenPreserves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.jsonl")

	s, err := OpenFile(path)
	require.NoError(t, err)
	_, err = s.Append(model.Card{Title: "persisted"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	_, err = s.Append(model.Card{Title: "second"})
	require.NoError(t, err)

	cards, err := s.List()
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "persisted", cards[0].Title)
	assert.Equal(t, "second", cards[1].Title)
}

// TestOpenFile_EmptyPath verifies the empty-path precondition.
func TestOpenFile_EmptyPath(t *testing.T) {
	_, err := OpenFile("")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitStoreError, cliErr.Code)
}
