package safeprint

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// ErrUnknownColor reports a color name outside the palette. Callers
// can match it with errors.Is.
var ErrUnknownColor = errors.New("unknown color name")

// styled builds a color with output forced on. Whether sequences reach
// the terminal is decided per call via Options.NoColor, not by TTY
// sniffing inside the library.
func styled(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// palette is the closed set of foreground color names. Initialized
// once, never mutated at runtime.
var palette = map[string]*color.Color{
	"BLACK":   styled(color.FgBlack),
	"RED":     styled(color.FgRed),
	"GREEN":   styled(color.FgGreen),
	"YELLOW":  styled(color.FgYellow),
	"BLUE":    styled(color.FgBlue),
	"MAGENTA": styled(color.FgMagenta),
	"CYAN":    styled(color.FgCyan),
	"WHITE":   styled(color.FgWhite),

	"LIGHTBLACK_EX":   styled(color.FgHiBlack),
	"LIGHTRED_EX":     styled(color.FgHiRed),
	"LIGHTGREEN_EX":   styled(color.FgHiGreen),
	"LIGHTYELLOW_EX":  styled(color.FgHiYellow),
	"LIGHTBLUE_EX":    styled(color.FgHiBlue),
	"LIGHTMAGENTA_EX": styled(color.FgHiMagenta),
	"LIGHTCYAN_EX":    styled(color.FgHiCyan),
	"LIGHTWHITE_EX":   styled(color.FgHiWhite),
}

// Highlight overlays. Primary swaps to black text on a bright yellow
// background; secondary is the inverse.
var (
	highlightStyle          = styled(color.FgBlack, color.BgHiYellow)
	secondaryHighlightStyle = styled(color.FgHiYellow, color.BgBlack)
)

// lookupColor resolves a case-insensitive palette name. Unknown names
// are an error, not a silent fallback.
func lookupColor(name string) (*color.Color, error) {
	if c, ok := palette[strings.ToUpper(name)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("color %q: %w", name, ErrUnknownColor)
}

// ColorNames returns the palette's names in sorted order, for CLI help
// and validation.
func ColorNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
