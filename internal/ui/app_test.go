package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNew_Defaults(t *testing.T) {
	m := New(Options{Path: "/tmp/x.log"})
	if m.refreshEvery != defaultRefreshEvery {
		t.Errorf("refreshEvery = %v, want %v", m.refreshEvery, defaultRefreshEvery)
	}
	if m.windowLines != defaultWindowLines {
		t.Errorf("windowLines = %d, want %d", m.windowLines, defaultWindowLines)
	}
	if !m.follow {
		t.Error("follow = false, want true on start")
	}
	if m.theme.Name != "Nightfox" {
		t.Errorf("theme = %q, want Nightfox", m.theme.Name)
	}
}

func TestNew_Overrides(t *testing.T) {
	m := New(Options{Path: "x", ThemeName: "Slate", RefreshEvery: 5 * time.Second, WindowLines: 10})
	if m.refreshEvery != 5*time.Second || m.windowLines != 10 || m.theme.Name != "Slate" {
		t.Fatalf("overrides not applied: %v %d %q", m.refreshEvery, m.windowLines, m.theme.Name)
	}
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestUpdate_WindowSizeMakesReady(t *testing.T) {
	m := sized(t, New(Options{Path: "x"}))
	if !m.ready {
		t.Fatal("model not ready after WindowSizeMsg")
	}
	if m.viewport.Height != 24-chromeHeight {
		t.Fatalf("viewport height = %d, want %d", m.viewport.Height, 24-chromeHeight)
	}
}

func TestUpdate_LinesRenderInView(t *testing.T) {
	m := sized(t, New(Options{Path: "x"}))
	updated, _ := m.Update(linesMsg{"first line", "second line"})
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "first line") || !strings.Contains(view, "second line") {
		t.Fatalf("view missing log lines:\n%s", view)
	}
}

func TestUpdate_SpaceTogglesFollow(t *testing.T) {
	m := sized(t, New(Options{Path: "x"}))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	if m.follow {
		t.Fatal("follow still true after space")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	if !m.follow {
		t.Fatal("follow not restored after second space")
	}
}

func TestUpdate_ThemeCycle(t *testing.T) {
	m := sized(t, New(Options{Path: "x"}))
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'T'}})
	m = updated.(Model)
	if m.theme.Name != "Slate" {
		t.Fatalf("theme = %q after cycle, want Slate", m.theme.Name)
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("NoSuchTheme"); got.Name != "Nightfox" {
		t.Fatalf("GetTheme fallback = %q, want Nightfox", got.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Slate" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("bogus"); got != "Nightfox" {
		t.Fatalf("NextTheme(bogus) = %q, want first theme", got)
	}
}
