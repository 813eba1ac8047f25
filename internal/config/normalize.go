package config

import (
	"fmt"
)

// MaxDepth is the deepest nesting Normalize will follow. Inputs nested
// beyond this bound (in practice only cyclic structures or generated
// pathological documents) fail with ErrTooDeep instead of exhausting
// the call stack.
const MaxDepth = 64

// ErrTooDeep is returned when normalization exceeds MaxDepth.
var ErrTooDeep = fmt.Errorf("structure too deep: exceeds %d nested levels", MaxDepth)

// Normalize converts an arbitrarily nested tree of mappings, sequences,
// and scalars into a Value. The shape of every subtree is preserved
// exactly: mappings become KindMapping with the same field set,
// sequences become KindSequence with the same length and order, and
// scalars are wrapped verbatim with no type coercion.
//
// The input is never mutated; the resulting Value holds its own copies
// of all container structure. Inputs of unanticipated types (a struct,
// a channel, a map with non-string keys that cannot be stringified) are
// treated as opaque scalars rather than rejected.
//
// Normalize is idempotent: a Value passed back in is returned
// structurally unchanged.
func Normalize(input any) (Value, error) {
	return normalize(input, 0)
}

func normalize(input any, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, ErrTooDeep
	}

	switch v := input.(type) {
	case Value:
		// Already normalized. Values are immutable, so returning it
		// as-is preserves the no-mutation contract.
		return v, nil

	case map[string]any:
		keys := sortedKeys(v)
		fields := make(map[string]Value, len(v))
		for _, key := range keys {
			field, err := normalize(v[key], depth+1)
			if err != nil {
				return Value{}, err
			}
			fields[key] = field
		}
		return Value{kind: KindMapping, keys: keys, fields: fields}, nil

	case map[any]any:
		// Some decoders produce interface-keyed maps for YAML mappings.
		// Keys are stringified via %v; uniqueness within the mapping is
		// guaranteed by the source map.
		stringed := make(map[string]any, len(v))
		for key, val := range v {
			stringed[fmt.Sprintf("%v", key)] = val
		}
		return normalize(stringed, depth)

	case []any:
		seq := make([]Value, len(v))
		for i, item := range v {
			element, err := normalize(item, depth+1)
			if err != nil {
				return Value{}, err
			}
			seq[i] = element
		}
		return Value{kind: KindSequence, seq: seq}, nil

	default:
		// Scalars and anything unanticipated pass through unchanged.
		return Value{kind: KindScalar, scalar: input}, nil
	}
}
