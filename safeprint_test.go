package safeprint

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/syntaxsurge/safeprint/logfile"
	"github.com/syntaxsurge/safeprint/pretty"
)

func TestPrint_Basic(t *testing.T) {
	var buf bytes.Buffer
	err := Print("Hello, World!", Options{Out: &buf, HideTimestamp: true, NoColor: true})
	if err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	if got := buf.String(); got != "Hello, World!\n" {
		t.Fatalf("output = %q, want %q", got, "Hello, World!\n")
	}
}

func TestPrint_ErrorForcesRedText(t *testing.T) {
	var buf bytes.Buffer
	err := Print("Error Occurred!", Options{Out: &buf, HideTimestamp: true, Error: true})
	if err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	want := "\x1b[31mError Occurred!\x1b[0m\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestPrint_ErrorOverridesTextColor(t *testing.T) {
	var buf bytes.Buffer
	err := Print("x", Options{Out: &buf, HideTimestamp: true, Error: true, TextColor: "GREEN"})
	if err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "\x1b[31m") {
		t.Fatalf("output = %q, want red regardless of TextColor", got)
	}
}

func TestPrint_UnknownColorFailsBeforeOutput(t *testing.T) {
	var buf bytes.Buffer
	err := Print("x", Options{Out: &buf, TextColor: "CHARTREUSE"})
	if !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("error = %v, want ErrUnknownColor", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("output written despite config error: %q", buf.String())
	}
}

func TestPrint_TimestampPrefix(t *testing.T) {
	var buf bytes.Buffer
	if err := Print("body", Options{Out: &buf, NoColor: true}); err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	// 12-hour clock, unpadded month: "[09:30 AM - 5/04/2025] body".
	re := regexp.MustCompile(`^\[\d{2}:\d{2} [AP]M - \d{1,2}/\d{2}/\d{4}\] body\n$`)
	if got := buf.String(); !re.MatchString(got) {
		t.Fatalf("output = %q, want match for %s", got, re)
	}
}

func TestTimestampLayout(t *testing.T) {
	at := time.Date(2025, time.May, 4, 9, 30, 0, 0, time.UTC)
	if got := at.Format(timestampLayout); got != "09:30 AM - 5/04/2025" {
		t.Fatalf("formatted timestamp = %q, want %q", got, "09:30 AM - 5/04/2025")
	}
}

func TestPrint_LabelAndPrefixDecorations(t *testing.T) {
	var buf bytes.Buffer
	err := Print("body", Options{
		Out:               &buf,
		HideTimestamp:     true,
		NoColor:           true,
		ChildProcessLabel: "worker-2",
		Prefix:            "db",
	})
	if err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	want := "[Child worker-2 Process] [db] body\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestPrint_HighlightOverlay(t *testing.T) {
	var buf bytes.Buffer
	err := Print("hot", Options{Out: &buf, HideTimestamp: true, Highlight: true})
	if err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	// Black text on bright yellow background.
	if got := buf.String(); !strings.Contains(got, "\x1b[30;103mhot") {
		t.Fatalf("output = %q, want black-on-bright-yellow overlay", got)
	}
}

func TestPrint_SecondaryHighlightOverlay(t *testing.T) {
	var buf bytes.Buffer
	err := Print("hot", Options{Out: &buf, HideTimestamp: true, SecondaryHighlight: true})
	if err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	// Bright yellow text on black background.
	if got := buf.String(); !strings.Contains(got, "\x1b[93;40mhot") {
		t.Fatalf("output = %q, want bright-yellow-on-black overlay", got)
	}
}

func TestPrint_RendersContainers(t *testing.T) {
	var buf bytes.Buffer
	data := pretty.Map{
		{Key: "a", Value: 1},
		{Key: "b", Value: []int{1, 2}},
	}
	err := Print(data, Options{Out: &buf, HideTimestamp: true, NoColor: true})
	if err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	want := "a: 1\nb:\n    - 1\n    - 2\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestPrint_SanitizesOrderedMappingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	var buf bytes.Buffer
	data := pretty.Map{
		{Key: "k\xffey", Value: "a\xffb"},
		{Key: "list", Value: []string{"x\xfe"}},
	}
	err := Print(data, Options{Out: &buf, HideTimestamp: true, NoColor: true, FilePath: path})
	if err != nil {
		t.Fatalf("Print returned error: %v", err)
	}

	want := "k ey: a b\nlist:\n    - x \n"
	if got := buf.String(); got != want {
		t.Fatalf("console output = %q, want %q", got, want)
	}
	if !utf8.ValidString(buf.String()) {
		t.Fatalf("console output contains invalid UTF-8: %q", buf.String())
	}

	mirror, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !utf8.Valid(mirror) {
		t.Fatalf("log file contains invalid UTF-8: %q", mirror)
	}
	if string(mirror) != want {
		t.Fatalf("log file = %q, want %q", mirror, want)
	}
}

func TestPrint_SanitizesInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	err := Print("a\xffb", Options{Out: &buf, HideTimestamp: true, NoColor: true})
	if err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	if got := buf.String(); got != "a b\n" {
		t.Fatalf("output = %q, want %q", got, "a b\n")
	}
}

func TestPrint_FileMirrorIsStripped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	var buf bytes.Buffer
	err := Print("colored", Options{
		Out:           &buf,
		HideTimestamp: true,
		TextColor:     "GREEN",
		Prefix:        "db",
		FilePath:      path,
	})
	if err != nil {
		t.Fatalf("Print returned error: %v", err)
	}

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("console output %q carries no escape sequences", buf.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "\x1b") {
		t.Fatalf("log file contains escape sequences: %q", data)
	}
	if got := string(data); got != "[db] colored\n" {
		t.Fatalf("log file = %q, want %q", got, "[db] colored\n")
	}
}

func TestPrint_ConsoleSurvivesFileFailure(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var buf bytes.Buffer
	err := Print("still printed", Options{
		Out:           &buf,
		HideTimestamp: true,
		NoColor:       true,
		FilePath:      filepath.Join(blocker, "out.log"),
	})
	if err == nil {
		t.Fatal("Print succeeded, want file-write error")
	}
	if got := buf.String(); got != "still printed\n" {
		t.Fatalf("console output = %q, want the line despite the file error", got)
	}
}

func TestPrint_NegativeLimitIsConfigError(t *testing.T) {
	var buf bytes.Buffer
	err := Print("x", Options{
		Out:            &buf,
		HideTimestamp:  true,
		NoColor:        true,
		FilePath:       filepath.Join(t.TempDir(), "out.log"),
		FileLinesLimit: -1,
	})
	if !errors.Is(err, logfile.ErrInvalidLimit) {
		t.Fatalf("error = %v, want ErrInvalidLimit", err)
	}
	// Console write still happened first.
	if got := buf.String(); got != "x\n" {
		t.Fatalf("console output = %q, want %q", got, "x\n")
	}
}

func TestPrint_ZeroLimitMeansDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	var buf bytes.Buffer
	err := Print("x", Options{Out: &buf, HideTimestamp: true, NoColor: true, FilePath: path})
	if err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}

func TestLookupColor(t *testing.T) {
	for _, name := range []string{"RED", "red", "LightYellow_Ex"} {
		if _, err := lookupColor(name); err != nil {
			t.Errorf("lookupColor(%q) = %v, want nil", name, err)
		}
	}
	if _, err := lookupColor("MAROON"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("lookupColor(MAROON) = %v, want ErrUnknownColor", err)
	}
}

func TestColorNames(t *testing.T) {
	names := ColorNames()
	if len(names) != 16 {
		t.Fatalf("ColorNames() has %d entries, want 16", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("ColorNames() not sorted: %v", names)
	}
}
