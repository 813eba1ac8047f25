package config

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies the shape of a Value node.
type Kind int

const (
	// KindScalar is a leaf node: string, number, boolean, nil, or any
	// unanticipated type treated as an opaque leaf.
	KindScalar Kind = iota

	// KindSequence is an ordered list of Values.
	KindSequence

	// KindMapping is a set of uniquely named fields, each holding a Value.
	KindMapping
)

// String returns the lowercase name of the kind, used in error messages
// and the rendered tree output.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a normalized configuration node: a tagged variant that is
// exactly one of scalar, sequence, or mapping. Field access on mappings
// is an explicit lookup returning (Value, bool) — absent fields never
// panic.
//
// Values are immutable after construction. The accessor methods return
// copies of internal slices so callers cannot alter the tree.
type Value struct {
	kind   Kind
	scalar any
	seq    []Value
	keys   []string
	fields map[string]Value
}

// Scalar wraps a leaf value. The value is stored verbatim with no type
// coercion.
func Scalar(v any) Value {
	return Value{kind: KindScalar, scalar: v}
}

// Sequence wraps an ordered list of Values.
func Sequence(items ...Value) Value {
	seq := make([]Value, len(items))
	copy(seq, items)
	return Value{kind: KindSequence, seq: seq}
}

// Mapping builds a mapping from keys and fields. Keys determines
// iteration order; it must contain exactly the keys of fields.
func Mapping(keys []string, fields map[string]Value) Value {
	ks := make([]string, len(keys))
	copy(ks, keys)
	fs := make(map[string]Value, len(fields))
	for k, v := range fields {
		fs[k] = v
	}
	return Value{kind: KindMapping, keys: ks, fields: fs}
}

// Kind returns the shape of this node.
func (v Value) Kind() Kind {
	return v.kind
}

// IsScalar reports whether the node is a leaf.
func (v Value) IsScalar() bool { return v.kind == KindScalar }

// IsSequence reports whether the node is an ordered list.
func (v Value) IsSequence() bool { return v.kind == KindSequence }

// IsMapping reports whether the node is a field mapping.
func (v Value) IsMapping() bool { return v.kind == KindMapping }

// ScalarValue returns the wrapped leaf value. It returns nil for
// non-scalar nodes.
func (v Value) ScalarValue() any {
	if v.kind != KindScalar {
		return nil
	}
	return v.scalar
}

// Len returns the number of elements (sequence) or fields (mapping).
// Scalars have length 0.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.fields)
	default:
		return 0
	}
}

// Index returns the i-th element of a sequence. The second return is
// false when the node is not a sequence or the index is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindSequence || i < 0 || i >= len(v.seq) {
		return Value{}, false
	}
	return v.seq[i], true
}

// Items returns a copy of the sequence elements. Nil for non-sequences.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	items := make([]Value, len(v.seq))
	copy(items, v.seq)
	return items
}

// Get looks up a mapping field by key. The second return is false when
// the node is not a mapping or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	field, ok := v.fields[key]
	return field, ok
}

// Keys returns a copy of the mapping's field names in iteration order.
// Nil for non-mappings.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)
	return keys
}

// Lookup walks a dot-separated path of mapping keys, e.g.
// "database.pool.size". The second return is false as soon as any
// segment is absent or reached through a non-mapping node.
func (v Value) Lookup(path string) (Value, bool) {
	current := v
	for _, segment := range strings.Split(path, ".") {
		next, ok := current.Get(segment)
		if !ok {
			return Value{}, false
		}
		current = next
	}
	return current, true
}

// Equal reports deep structural equality: same kind, and recursively
// equal contents. Scalar comparison uses ==, which covers the YAML/JSON
// scalar types (string, bool, int, int64, float64, nil).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return v.scalar == other.scalar
	case KindSequence:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.fields) != len(other.fields) {
			return false
		}
		for k, field := range v.fields {
			otherField, ok := other.fields[k]
			if !ok || !field.Equal(otherField) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Render writes an indented human-readable view of the tree, used by
// the "config show" command. Mappings print one "key: ..." line per
// field, sequences print "- ..." lines, scalars print via %v.
func (v Value) Render() string {
	var b strings.Builder
	v.render(&b, 0)
	return b.String()
}

func (v Value) render(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.kind {
	case KindScalar:
		fmt.Fprintf(b, "%s%v\n", indent, v.scalar)
	case KindSequence:
		if len(v.seq) == 0 {
			fmt.Fprintf(b, "%s[]\n", indent)
			return
		}
		for _, item := range v.seq {
			if item.IsScalar() {
				fmt.Fprintf(b, "%s- %v\n", indent, item.scalar)
				continue
			}
			fmt.Fprintf(b, "%s-\n", indent)
			item.render(b, depth+1)
		}
	case KindMapping:
		if len(v.fields) == 0 {
			fmt.Fprintf(b, "%s{}\n", indent)
			return
		}
		for _, key := range v.keys {
			field := v.fields[key]
			if field.IsScalar() {
				fmt.Fprintf(b, "%s%s: %v\n", indent, key, field.scalar)
				continue
			}
			fmt.Fprintf(b, "%s%s:\n", indent, key)
			field.render(b, depth+1)
		}
	}
}

// Interface converts the tree back to plain Go values: mappings become
// map[string]any, sequences []any, scalars their wrapped value. Used for
// JSON output of the "config show" command.
func (v Value) Interface() any {
	switch v.kind {
	case KindSequence:
		items := make([]any, len(v.seq))
		for i, item := range v.seq {
			items[i] = item.Interface()
		}
		return items
	case KindMapping:
		fields := make(map[string]any, len(v.fields))
		for k, field := range v.fields {
			fields[k] = field.Interface()
		}
		return fields
	default:
		return v.scalar
	}
}

// sortedKeys returns the keys of a generic map in sorted order. Plain
// Go maps carry no encounter order, so sorting is the only way to make
// normalization output deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
