package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/syntaxsurge/safeprint"
	"github.com/syntaxsurge/safeprint/internal/config"
	"github.com/syntaxsurge/safeprint/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (default ~/.config/safeprint/config.toml)")
	filePath := flag.String("file", "", "mirror output to this rolling log file")
	limit := flag.Int("limit", 0, "log file line cap (default 10000)")
	prefix := flag.String("prefix", "", "bracketed prefix label")
	prefixColor := flag.String("prefix-color", "", "prefix color (default GREEN)")
	label := flag.String("label", "", "child process label")
	labelColor := flag.String("label-color", "", "label color (default RED)")
	textColor := flag.String("color", "", "body text color")
	highlight := flag.Bool("highlight", false, "black text on bright yellow")
	secondary := flag.Bool("secondary-highlight", false, "bright yellow text on black")
	noTime := flag.Bool("no-time", false, "omit the timestamp prefix")
	markError := flag.Bool("error", false, "render as an error (red)")
	noColor := flag.Bool("no-color", false, "never emit escape sequences")
	follow := flag.Bool("follow", false, "open the log viewer instead of printing")
	theme := flag.String("theme", "", "viewer theme name")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "safeprint: %v\n", err)
		return 1
	}

	logFile := cfg.LogFile
	if *filePath != "" {
		logFile = *filePath
	}
	linesLimit := cfg.LinesLimit
	if *limit > 0 {
		linesLimit = *limit
	}

	if *follow {
		if logFile == "" {
			fmt.Fprintln(os.Stderr, "safeprint: -follow needs a log file (set -file or log_file in the config)")
			return 1
		}
		themeName := cfg.Theme
		if *theme != "" {
			themeName = *theme
		}
		if err := ui.Run(ui.Options{Path: logFile, ThemeName: themeName}); err != nil {
			fmt.Fprintf(os.Stderr, "safeprint: %v\n", err)
			return 1
		}
		return 0
	}

	opts := safeprint.Options{
		ChildProcessLabel:  *label,
		LabelColor:         valueOr(*labelColor, cfg.LabelColor),
		Prefix:             *prefix,
		PrefixColor:        valueOr(*prefixColor, cfg.PrefixColor),
		TextColor:          *textColor,
		Highlight:          *highlight,
		SecondaryHighlight: *secondary,
		FilePath:           logFile,
		FileLinesLimit:     linesLimit,
		HideTimestamp:      *noTime || !cfg.Timestamp,
		Error:              *markError,
		NoColor:            *noColor || !stdoutIsTerminal(),
	}

	if flag.NArg() > 0 {
		if err := safeprint.Print(strings.Join(flag.Args(), " "), opts); err != nil {
			fmt.Fprintf(os.Stderr, "safeprint: %v\n", err)
			return 1
		}
		return 0
	}

	// No arguments: stream stdin line by line.
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := safeprint.Print(scanner.Text(), opts); err != nil {
			fmt.Fprintf(os.Stderr, "safeprint: %v\n", err)
			return 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "safeprint: read stdin: %v\n", err)
		return 1
	}
	return 0
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
