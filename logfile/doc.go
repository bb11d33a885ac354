// Package logfile maintains a flat, line-capped log file.
//
// # Overview
//
// The file is plain UTF-8 text, one record per line, newline
// terminated, with no header, footer, or structured delimiters.
// WriteLine appends a record and then enforces the cap: whenever the
// file exceeds its configured limit, lines are evicted from the head —
// oldest first, by physical position, with no timestamp parsing — until
// exactly limit lines remain. The file is created on first write and
// never deleted by this package.
//
// # Write mechanics
//
// Enforcing the cap is deliberately a read-modify-write of the whole
// file (read, trim, rewrite), not a ring buffer on disk. That keeps the
// on-disk format trivially greppable at the cost of O(file size) work
// per write.
//
// # Concurrency
//
// Known limitation: the append-and-trim sequence takes no lock. Two
// writers racing on the same path can interleave their
// read-modify-write cycles and drop or duplicate lines. The package is
// intended for a single synchronous writer; anything else must
// serialize calls itself.
//
// # Reading
//
// Tail reads the last N lines for display (the viewer uses it on every
// refresh). It degrades gracefully: a file that does not exist yet
// simply yields no lines.
//
// # Errors
//
// A non-positive limit fails with ErrInvalidLimit (wrapped). I/O
// failures — unwritable path, uncreatable directory — propagate to the
// caller wrapped with context; nothing is swallowed.
package logfile
