package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/syntaxsurge/safeprint/logfile"
)

const (
	defaultRefreshEvery = time.Second
	defaultWindowLines  = 2000

	// Header and footer each take one rendered row plus the footer's
	// top border.
	chromeHeight = 3
)

// Options configures the viewer.
type Options struct {
	Path         string        // log file to follow
	ThemeName    string        // empty uses the default theme
	RefreshEvery time.Duration // zero uses one second
	WindowLines  int           // zero uses 2000
}

// Model is the root viewer state for Bubble Tea.
type Model struct {
	path         string
	refreshEvery time.Duration
	windowLines  int

	theme  Theme
	styles Styles

	viewport viewport.Model
	width    int
	height   int
	ready    bool
	follow   bool

	lines   []string
	readErr error
}

// New creates a viewer model following the log file at opts.Path.
func New(opts Options) Model {
	refreshEvery := opts.RefreshEvery
	if refreshEvery <= 0 {
		refreshEvery = defaultRefreshEvery
	}
	windowLines := opts.WindowLines
	if windowLines <= 0 {
		windowLines = defaultWindowLines
	}
	theme := GetTheme(opts.ThemeName)

	return Model{
		path:         opts.Path,
		refreshEvery: refreshEvery,
		windowLines:  windowLines,
		theme:        theme,
		styles:       theme.Styles(),
		follow:       true,
	}
}

type tickMsg time.Time

type linesMsg []string

type readErrMsg struct{ err error }

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadCmd() tea.Cmd {
	path, max := m.path, m.windowLines
	return func() tea.Msg {
		lines, err := logfile.Tail(path, max)
		if err != nil {
			return readErrMsg{err: err}
		}
		return linesMsg(lines)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tickCmd(m.refreshEvery))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-chromeHeight, 1))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-chromeHeight, 1)
		}
		m.refreshContent()
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.loadCmd(), tickCmd(m.refreshEvery))

	case linesMsg:
		m.lines = msg
		m.readErr = nil
		m.refreshContent()
		return m, nil

	case readErrMsg:
		m.readErr = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case " ":
		m.follow = !m.follow
		if m.follow {
			m.viewport.GotoBottom()
		}
		return m, nil

	case "g", "home":
		m.follow = false
		m.viewport.GotoTop()
		return m, nil

	case "G", "end":
		m.follow = true
		m.viewport.GotoBottom()
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.refreshContent()
		return m, nil
	}

	// Manual scrolling pauses following.
	var cmd tea.Cmd
	before := m.viewport.YOffset
	m.viewport, cmd = m.viewport.Update(msg)
	if m.viewport.YOffset != before {
		m.follow = false
	}
	return m, cmd
}

// refreshContent re-renders the viewport from the current lines.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	rendered := make([]string, len(m.lines))
	for i, line := range m.lines {
		rendered[i] = m.styleLine(line)
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))
	if m.follow {
		m.viewport.GotoBottom()
	}
}

// styleLine picks a style by line shape: error-report lines stand out,
// indented traceback continuations recede.
func (m Model) styleLine(line string) string {
	switch {
	case strings.Contains(line, "causes the error."):
		return m.styles.Danger.Render(line)
	case strings.HasPrefix(line, "    "), line == "Traceback:":
		return m.styles.Muted.Render(line)
	default:
		return m.styles.Text.Render(line)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.renderHeader() + "\n" + m.viewport.View() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	state := "following"
	if !m.follow {
		state = "paused"
	}
	header := m.styles.Title.Render("safeprint") + " " +
		m.styles.Path.Render(m.path) + " " +
		m.styles.Muted.Render("("+state+")")
	if m.readErr != nil {
		header += " " + m.styles.Danger.Render(fmt.Sprintf("read error: %v", m.readErr))
	}
	return header
}

func (m Model) renderFooter() string {
	hints := "space pause/follow · g/G top/bottom · T theme · q quit"
	return m.styles.Footer.Width(max(m.width, len(hints))).Render(hints)
}

// Run starts the viewer and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
