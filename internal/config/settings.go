package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Settings is the tool's own configuration, as opposed to the generic
// config trees handled by LoadFile. Settings are loaded once at startup
// and treated as read-only afterward.
type Settings struct {
	Store  StoreSettings  `koanf:"store"  validate:"required"`
	Log    LogSettings    `koanf:"log"    validate:"required"`
	Prompt PromptSettings `koanf:"prompt" validate:"required"`
}

// StoreSettings configures card persistence.
type StoreSettings struct {
	// Path is the card store file. A relative path is resolved against
	// the working directory.
	Path string `koanf:"path" validate:"required"`
}

// LogSettings configures the console logger.
type LogSettings struct {
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
}

// PromptSettings configures the interactive loop.
type PromptSettings struct {
	// ContinueDefault is the answer assumed when the user presses bare
	// Enter at the "add another card?" question.
	ContinueDefault bool `koanf:"continue_default"`
}

// defaults returns the default settings values.
func defaults() map[string]any {
	storePath := "cards.jsonl"
	if home, err := os.UserHomeDir(); err == nil {
		storePath = filepath.Join(home, ".vocab", "cards.jsonl")
	}

	return map[string]any{
		"store.path":              storePath,
		"log.level":               "info",
		"prompt.continue_default": true,
	}
}

// LoadSettings loads settings with the following precedence (highest to
// lowest):
//  1. Environment variables (VOCAB_ prefix, underscores become dots)
//  2. Settings file (YAML; only consulted if the path exists)
//  3. Default values
//
// path may be empty, in which case only defaults and environment
// variables apply.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := loadFileIfExists(k, path); err != nil {
			return nil, fmt.Errorf("loading settings file %q: %w", path, err)
		}
	}

	err := k.Load(env.Provider("VOCAB_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "VOCAB_")),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, fmt.Errorf("unmarshalling settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// loadFileIfExists loads a YAML settings file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
