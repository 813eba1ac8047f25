// Package config handles both kinds of configuration the vocab CLI
// deals with.
//
// The first is the generic side: LoadFile reads an arbitrary YAML or
// JSONC document and Normalize converts the decoded tree into a Value,
// a tagged variant that is exactly one of scalar, sequence, or mapping.
// Field access on mappings is an explicit Get(key) lookup returning
// (Value, bool) — there is no dynamic attribute access and absent keys
// never panic. Normalization preserves shape exactly and caps nesting
// at MaxDepth as a defense against cyclic input.
//
// The second is the tool's own Settings, loaded with koanf using the
// usual precedence: defaults, then an optional YAML settings file, then
// VOCAB_-prefixed environment variables. Settings are validated with
// go-playground/validator before use.
package config
