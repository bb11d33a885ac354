package safeprint

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"

	"github.com/syntaxsurge/safeprint/logfile"
	"github.com/syntaxsurge/safeprint/pretty"
	"github.com/syntaxsurge/safeprint/sanitize"
)

// DefaultFileLinesLimit caps the log file when Options.FileLinesLimit
// is left zero.
const DefaultFileLinesLimit = 10000

const (
	defaultLabelColor  = "RED"
	defaultPrefixColor = "GREEN"
	timestampColor     = "GREEN"
	errorColor         = "RED"
)

// timestampLayout is a 12-hour clock with an unpadded month, wrapped
// in brackets by the caller: "03:04 PM - 1/02/2006".
const timestampLayout = "03:04 PM - 1/02/2006"

// Options configure a single Print call. The zero value prints to
// standard output with a green timestamp and no file logging.
type Options struct {
	// ChildProcessLabel, when set, prepends "[Child <label> Process]"
	// in LabelColor (default "RED").
	ChildProcessLabel string
	LabelColor        string

	// Prefix, when set, prepends "[<prefix>]" in PrefixColor
	// (default "GREEN").
	Prefix      string
	PrefixColor string

	// TextColor colors the rendered body. Empty means uncolored.
	TextColor string

	// Highlight renders the body black on bright yellow;
	// SecondaryHighlight bright yellow on black.
	Highlight          bool
	SecondaryHighlight bool

	// FilePath, when set, appends the uncolored output to a rolling
	// log file capped at FileLinesLimit lines. Zero FileLinesLimit
	// means DefaultFileLinesLimit; a negative value is rejected.
	FilePath       string
	FileLinesLimit int

	// HideTimestamp suppresses the bracketed timestamp prefix.
	HideTimestamp bool

	// Error forces TextColor to "RED" regardless of its value.
	Error bool

	// NoColor suppresses every escape sequence. The library always
	// emits color otherwise; terminal detection is the caller's call.
	NoColor bool

	// Out defaults to os.Stdout.
	Out io.Writer
}

// Print sanitizes data, renders it (containers indent one element or
// pair per line), decorates it with the configured colors, timestamp,
// and labels, and writes it to Options.Out followed by a newline. When
// FilePath is set the same text, stripped of escape sequences, is
// appended to the rolling log file.
//
// Unknown color names fail (wrapping ErrUnknownColor) before anything
// is written. A failing file write never suppresses the console write:
// the console line is emitted first and the file error is returned.
func Print(data any, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	textColor := opts.TextColor
	if opts.Error {
		textColor = errorColor
	}

	// Resolve every color up front so configuration errors surface
	// before any output is produced.
	labelStyle, err := lookupColor(valueOr(opts.LabelColor, defaultLabelColor))
	if err != nil {
		return err
	}
	prefixStyle, err := lookupColor(valueOr(opts.PrefixColor, defaultPrefixColor))
	if err != nil {
		return err
	}
	var textStyle *color.Color
	if textColor != "" {
		if textStyle, err = lookupColor(textColor); err != nil {
			return err
		}
	}
	timestampStyle, _ := lookupColor(timestampColor)

	cleaned := sanitize.ReplaceInvalidUTF8(data, sanitize.DefaultReplacement)
	body := pretty.Format(cleaned)

	if opts.Highlight {
		body = opts.colorize(highlightStyle, body)
	}
	if opts.SecondaryHighlight {
		body = opts.colorize(secondaryHighlightStyle, body)
	}
	if textStyle != nil {
		body = opts.colorize(textStyle, body)
	}

	var prefix strings.Builder
	if !opts.HideTimestamp {
		stamp := "[" + time.Now().Format(timestampLayout) + "]"
		prefix.WriteString(opts.colorize(timestampStyle, stamp) + " ")
	}
	if opts.ChildProcessLabel != "" {
		label := "[Child " + opts.ChildProcessLabel + " Process]"
		prefix.WriteString(opts.colorize(labelStyle, label) + " ")
	}
	if opts.Prefix != "" {
		prefix.WriteString(opts.colorize(prefixStyle, "["+opts.Prefix+"]") + " ")
	}

	output := prefix.String() + body
	fmt.Fprintln(out, output)

	if opts.FilePath == "" {
		return nil
	}
	limit := opts.FileLinesLimit
	if limit == 0 {
		limit = DefaultFileLinesLimit
	}
	if err := logfile.WriteLine(opts.FilePath, ansi.Strip(output), limit); err != nil {
		return fmt.Errorf("log to file: %w", err)
	}
	return nil
}

func (o Options) colorize(style *color.Color, s string) string {
	if o.NoColor || style == nil {
		return s
	}
	return style.Sprint(s)
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
