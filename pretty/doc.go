// Package pretty renders arbitrarily nested values as indented,
// human-readable text for console output and plain-text logs.
//
// # Rendering rules
//
// Values are classified by capability into three variants:
//
//   - Scalar: rendered via its natural text representation on a single
//     line. Strings appear verbatim (no quoting), byte slices as text,
//     nil as "null".
//   - Sequence (slice or array): one element per line with a "- "
//     prefix, indented one level (four spaces) deeper than the parent.
//     An empty sequence renders as "[]" on one line.
//   - Mapping: one "key: value" pair per line. A nested container
//     starts on the following line, one level deeper. An empty mapping
//     renders as "{}".
//
// # Ordering
//
// The Map type is an ordered mapping: its pairs render in insertion
// order, never sorted. Builtin Go maps carry no insertion order, so
// their keys render sorted to keep output deterministic.
//
// # Depth
//
// Recursion is capped at 64 levels; deeper structure renders as a
// literal "..." line. Cyclic structures therefore terminate rather
// than being detected — the cap is the documented answer to what
// would otherwise be unbounded recursion.
package pretty
