package logfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidLimit reports a non-positive line limit. Callers can match
// it with errors.Is.
var ErrInvalidLimit = errors.New("line limit must be positive")

// WriteLine appends line plus a newline to the file at path, creating
// the file and any missing parent directories, then evicts lines from
// the head (oldest first) until the file holds at most limit lines.
//
// A line containing embedded newlines counts as that many physical
// lines. The trim is a read-modify-write of the whole file, so two
// concurrent writers on the same path can drop or duplicate lines;
// callers that need concurrent logging must serialize externally.
//
// A limit of zero or less fails with an error wrapping ErrInvalidLimit.
// I/O failures are returned wrapped, never swallowed.
func WriteLine(path, line string, limit int) error {
	if limit <= 0 {
		return fmt.Errorf("line limit %d: %w", limit, ErrInvalidLimit)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}

	existing, err := readLines(path)
	if err != nil {
		return err
	}

	lines := append(existing, strings.Split(line, "\n")...)
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// readLines returns every line of the file at path, without
// terminators. A missing file yields no lines and no error.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), nil
}

// Tail returns at most max lines from the end of the file at path,
// oldest first. The file is scanned once and at most 2*max lines are
// held in memory at a time, so huge files stay cheap to tail. A
// missing file yields nil, nil.
func Tail(path string, max int) ([]string, error) {
	if max <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// Grow to twice the window, then compact back down to the last
	// max lines. Amortized this copies each line at most once.
	buf := make([]string, 0, 2*max)
	for scanner.Scan() {
		if len(buf) == cap(buf) {
			copy(buf, buf[len(buf)-max:])
			buf = buf[:max]
		}
		buf = append(buf, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if len(buf) > max {
		buf = buf[len(buf)-max:]
	}
	lines := make([]string, len(buf))
	copy(lines, buf)
	return lines, nil
}
