package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadSettings_Defaults verifies defaults apply when no file or
// env overrides are present.
func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, "info", settings.Log.Level)
	assert.NotEmpty(t, settings.Store.Path)
	assert.True(t, settings.Prompt.ContinueDefault)
}

// TestLoadSettings_File verifies file values override defaults.
func TestLoadSettings_File(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.yaml", `
store:
  path: /tmp/decks/cards.jsonl
log:
  level: debug
`)

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/decks/cards.jsonl", settings.Store.Path)
	assert.Equal(t, "debug", settings.Log.Level)
	// Unset file keys keep their defaults.
	assert.True(t, settings.Prompt.ContinueDefault)
}

// TestLoadSettings_MissingFileIgnored verifies a nonexistent settings
// path falls back to defaults rather than failing.
func TestLoadSettings_MissingFileIgnored(t *testing.T) {
	settings, err := LoadSettings(t.TempDir() + "/absent.yaml")
	require.NoError(t, err)
	assert.Equal(t, "info", settings.Log.Level)
}

// TestLoadSettings_EnvOverride verifies environment variables take
// precedence over the file.
func TestLoadSettings_EnvOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.yaml", "log:\n  level: warn\n")
	t.Setenv("VOCAB_LOG_LEVEL", "error")

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "error", settings.Log.Level)
}

// TestLoadSettings_ValidationFailure verifies invalid values produce a
// readable aggregated error.
func TestLoadSettings_ValidationFailure(t *testing.T) {
	t.Setenv("VOCAB_LOG_LEVEL", "loud")

	_, err := LoadSettings("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings validation failed")
	assert.Contains(t, err.Error(), "log.level must be one of")
}

// TestLoadSettings_MalformedFile verifies a broken settings file is a
// load error, not a silent fallback.
func TestLoadSettings_MalformedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.yaml", "store: [oops")

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading settings file")
}
