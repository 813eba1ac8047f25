package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/vocab/internal/model"
)

// LoadFile reads a structured configuration file and returns its
// normalized Value tree.
//
// The format is chosen by extension: .json and .jsonc files are parsed
// as JSONC (comments and trailing commas stripped with
// github.com/tidwall/jsonc before standard JSON parsing, the same
// approach real-world editor config files require); everything else is
// parsed as YAML.
//
// An empty path is an invalid-argument error. A missing or unreadable
// file is fatal to the caller: the error carries ExitConfigError.
func LoadFile(path string) (Value, error) {
	if strings.TrimSpace(path) == "" {
		return Value{}, model.NewCLIError(model.ExitConfigError, "config path must be a non-empty string")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Value{}, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return Value{}, model.WrapCLIError(model.ExitConfigError, "failed to read config file", err)
	}

	var raw any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		// Strip JSONC comments (// and /* */) and trailing commas
		// before parsing with encoding/json.
		cleanJSON := jsonc.ToJSON(data)
		if err := json.Unmarshal(cleanJSON, &raw); err != nil {
			return Value{}, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("failed to parse %s", path),
				err,
			)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Value{}, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("failed to parse %s", path),
				err,
			)
		}
	}

	normalized, err := Normalize(raw)
	if err != nil {
		return Value{}, model.WrapCLIError(model.ExitConfigError, "failed to normalize config", err)
	}

	// Post-condition: normalizing a decoded mapping document must yield
	// a mapping. Anything else means the normalizer itself is broken.
	if _, isMap := raw.(map[string]any); isMap && !normalized.IsMapping() {
		return Value{}, model.NewCLIError(
			model.ExitConfigError,
			fmt.Sprintf("internal error: normalized a mapping document to %s", normalized.Kind()),
		)
	}

	return normalized, nil
}
