// Package safeprint prints arbitrary data to the console with color,
// optional timestamp and label decorations, and an optional mirror
// into a line-capped plain-text log file.
//
// # Overview
//
// Print is the single entry point. Each call runs a fixed pipeline:
//
//  1. Sanitize: invalid UTF-8 bytes are replaced (package sanitize),
//     so malformed input can never corrupt the console or the log.
//  2. Render: containers format one element or key/value pair per
//     line with four-space indentation (package pretty); scalars use
//     their natural text form.
//  3. Decorate: highlight overlays, then the green bracketed
//     timestamp, the child-process label, the custom prefix, and the
//     body color, as ANSI escape sequences.
//  4. Console write: the decorated line goes to Options.Out (standard
//     output by default).
//  5. File write: when a path is configured, the same text with every
//     escape sequence stripped is appended via logfile.WriteLine,
//     which enforces the rolling line cap.
//
// ErrorInfo wraps the same pipeline for caught errors, rendering the
// error's type, message, and source location plus a short traceback,
// always in the error color.
//
// # Colors
//
// Color names form a closed, immutable palette using the classic
// terminal vocabulary: BLACK through WHITE plus the bright
// LIGHT<NAME>_EX variants. Unknown names fail with ErrUnknownColor
// before anything is written; there is no silent fallback. Escape
// sequences are always emitted unless Options.NoColor is set —
// deciding whether a terminal is attached is deliberately left to the
// caller (the bundled CLI gates on isatty).
//
// # Failure semantics
//
//   - Configuration problems (unknown color, negative line limit)
//     surface as errors; color names are resolved before any output.
//   - A failing file write never suppresses the console write. The
//     console line is emitted first; the wrapped file error is then
//     returned to the caller.
//   - Sanitizing never fails; malformed bytes are replaced, not
//     rejected.
//
// # Not a logging framework
//
// There are no levels, handlers, rotation policies, or structured
// output, and calls are synchronous and unsynchronized. The rolling
// file is unsafe for concurrent writers; see package logfile.
package safeprint
