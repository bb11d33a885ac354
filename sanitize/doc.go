// Package sanitize scrubs invalid UTF-8 from values of unknown shape.
//
// # Overview
//
// Data headed for a terminal or a log file often arrives from sources
// that make no encoding promises: subprocess output, file contents,
// network payloads. This package walks such a value — a string, a byte
// slice, or an arbitrarily nested combination of slices, arrays, and
// maps — and replaces every byte that cannot participate in a valid
// UTF-8 encoding with a replacement string (a single space by
// default).
//
// # Guarantees
//
//   - The result contains no undecodable byte sequences.
//   - Valid input passes through unchanged; in particular a legitimate
//     U+FFFD rune is valid UTF-8 and is preserved.
//   - Sanitizing is idempotent: applying it twice equals applying it
//     once.
//   - Containers are rebuilt, never mutated in place, and keep their
//     shape, length, and element order. Map keys of string kind are
//     scrubbed along with the values.
//   - The walk never returns an error and never panics on malformed
//     input. Scalars that cannot hold text (numbers, booleans, nil,
//     structs) come back untouched.
//
// Replacement happens per invalid byte, so a two-byte garbage sequence
// produces two replacement strings.
//
// # Usage
//
//	clean := sanitize.ReplaceInvalidUTF8(raw, sanitize.DefaultReplacement)
package sanitize
