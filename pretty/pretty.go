package pretty

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/syntaxsurge/safeprint/sanitize"
)

const (
	indentWidth = 4

	// maxDepth bounds recursion so cyclic or pathologically deep
	// structures terminate. Anything deeper renders as truncationMark.
	maxDepth       = 64
	truncationMark = "..."

	emptySequence = "[]"
	emptyMapping  = "{}"
)

// KV is a single key/value pair of a Map.
type KV struct {
	Key   string
	Value any
}

// Map is an ordered mapping. Unlike a builtin Go map it renders its
// pairs in exactly the order they appear.
type Map []KV

// CleanUTF8 implements the sanitize.Cleaner capability: the pair is
// rebuilt with its key and value scrubbed recursively, so a Map is
// sanitized like any other container (the slice recursion handles the
// pairs, this method handles what is inside each one). Order is
// untouched.
func (kv KV) CleanUTF8(replacement string) any {
	key, _ := sanitize.ReplaceInvalidUTF8(kv.Key, replacement).(string)
	return KV{
		Key:   key,
		Value: sanitize.ReplaceInvalidUTF8(kv.Value, replacement),
	}
}

// Format renders v as an indented, human-readable multi-line string.
// Sequences render one element per line with a "- " prefix, mappings
// one "key: value" pair per line, each nesting level indented four
// spaces deeper. Scalars render via their natural text representation.
// The result carries no trailing newline.
func Format(v any) string {
	var b strings.Builder
	writeValue(&b, v, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

// kind is the tagged variant a value formats as.
type kind int

const (
	kindScalar kind = iota
	kindSequence
	kindMapping
)

// kindOf classifies v by capability, not by type name. Byte slices
// count as text, not as sequences of numbers.
func kindOf(v any) kind {
	if v == nil {
		return kindScalar
	}
	switch v.(type) {
	case Map:
		return kindMapping
	case []byte, string, fmt.Stringer, error:
		return kindScalar
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return kindSequence
	case reflect.Map:
		return kindMapping
	default:
		return kindScalar
	}
}

func writeValue(b *strings.Builder, v any, depth int) {
	if depth > maxDepth {
		writeLine(b, truncationMark, depth)
		return
	}
	switch kindOf(v) {
	case kindSequence:
		writeSequence(b, reflect.ValueOf(v), depth)
	case kindMapping:
		writeMapping(b, v, depth)
	default:
		writeLine(b, scalarText(v), depth)
	}
}

func writeSequence(b *strings.Builder, rv reflect.Value, depth int) {
	if rv.Len() == 0 {
		writeLine(b, emptySequence, depth)
		return
	}
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if kindOf(elem) == kindScalar {
			writeLine(b, "- "+scalarText(elem), depth)
			continue
		}
		writeLine(b, "-", depth)
		writeValue(b, elem, depth+1)
	}
}

func writeMapping(b *strings.Builder, v any, depth int) {
	pairs := mappingPairs(v)
	if len(pairs) == 0 {
		writeLine(b, emptyMapping, depth)
		return
	}
	for _, pair := range pairs {
		if kindOf(pair.Value) == kindScalar {
			writeLine(b, pair.Key+": "+scalarText(pair.Value), depth)
			continue
		}
		writeLine(b, pair.Key+":", depth)
		writeValue(b, pair.Value, depth+1)
	}
}

// mappingPairs flattens a mapping into ordered pairs. A Map keeps its
// insertion order; builtin Go maps carry no order, so their keys are
// sorted to keep output deterministic.
func mappingPairs(v any) []KV {
	if m, ok := v.(Map); ok {
		return m
	}
	rv := reflect.ValueOf(v)
	pairs := make([]KV, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, KV{
			Key:   scalarText(iter.Key().Interface()),
			Value: iter.Value().Interface(),
		})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case []byte:
		return string(t)
	}
	return fmt.Sprint(v)
}

func writeLine(b *strings.Builder, text string, depth int) {
	b.WriteString(strings.Repeat(" ", depth*indentWidth))
	b.WriteString(text)
	b.WriteByte('\n')
}
