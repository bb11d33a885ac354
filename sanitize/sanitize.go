package sanitize

import (
	"reflect"
	"strings"
	"unicode/utf8"
)

// DefaultReplacement is substituted for invalid bytes when callers have
// no preference of their own.
const DefaultReplacement = " "

// Cleaner is the capability a container type outside this package can
// implement to define its own scrub recursion. ReplaceInvalidUTF8
// delegates to it before any built-in handling, so such types are
// covered wherever they appear, including nested inside slices and
// maps.
type Cleaner interface {
	CleanUTF8(replacement string) any
}

// ReplaceInvalidUTF8 returns a copy of input in which every byte that
// cannot participate in a valid UTF-8 encoding has been replaced with
// replacement. Strings and byte slices are scrubbed directly; slices,
// arrays, and maps are rebuilt with every element (and string key)
// scrubbed recursively. A value implementing Cleaner is delegated to
// its own CleanUTF8 method. Any other value is returned unchanged.
//
// The input is never mutated and the function never fails: malformed
// bytes are always replaced, never rejected. Applying it twice is
// equivalent to applying it once. The replacement may be empty or
// longer than one character; it is inserted literally.
func ReplaceInvalidUTF8(input any, replacement string) any {
	if c, ok := input.(Cleaner); ok {
		return c.CleanUTF8(replacement)
	}
	switch v := input.(type) {
	case string:
		return cleanString(v, replacement)
	case []byte:
		return cleanBytes(v, replacement)
	case nil:
		return nil
	}

	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return cleanSequence(rv, replacement)
	case reflect.Map:
		return cleanMapping(rv, replacement)
	default:
		return input
	}
}

// cleanString replaces each invalid byte of s with replacement. Valid
// strings are returned as-is without reallocation.
func cleanString(s, replacement string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteString(replacement)
			i++
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// cleanBytes is cleanString over a byte slice, preserving the slice
// shape. A fresh slice is returned even when no replacement happened
// so the caller's buffer is never aliased.
func cleanBytes(p []byte, replacement string) []byte {
	out := make([]byte, 0, len(p))
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			out = append(out, replacement...)
			i++
			continue
		}
		out = append(out, p[i:i+size]...)
		i += size
	}
	return out
}

func cleanSequence(rv reflect.Value, replacement string) any {
	length := rv.Len()
	var out reflect.Value
	if rv.Kind() == reflect.Array {
		out = reflect.New(rv.Type()).Elem()
	} else {
		out = reflect.MakeSlice(rv.Type(), length, length)
	}
	for i := 0; i < length; i++ {
		cleaned := ReplaceInvalidUTF8(rv.Index(i).Interface(), replacement)
		setCompatible(out.Index(i), cleaned, rv.Index(i))
	}
	return out.Interface()
}

func cleanMapping(rv reflect.Value, replacement string) any {
	out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key()
		if key.Kind() == reflect.String {
			key = reflect.ValueOf(cleanString(key.String(), replacement)).Convert(key.Type())
		}
		value := reflect.New(rv.Type().Elem()).Elem()
		setCompatible(value, ReplaceInvalidUTF8(iter.Value().Interface(), replacement), iter.Value())
		out.SetMapIndex(key, value)
	}
	return out.Interface()
}

// setCompatible stores cleaned into dst when the types line up and
// falls back to the original value otherwise. The fallback only fires
// for exotic element types that the recursion leaves untouched anyway.
func setCompatible(dst reflect.Value, cleaned any, original reflect.Value) {
	if cleaned == nil {
		dst.SetZero()
		return
	}
	cv := reflect.ValueOf(cleaned)
	if cv.Type().AssignableTo(dst.Type()) {
		dst.Set(cv)
		return
	}
	dst.Set(original)
}
