package cli

import (
	"strings"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model. It owns the navigation stack,
// forwards messages to the active screen and draws the chrome (header
// with breadcrumbs, status bar with key hints) around it.
type appModel struct {
	state    *SharedState
	current  View
	quitting bool
}

func newAppModel(app *App) *appModel {
	state := &SharedState{
		App: app,
		Nav: NewNavigationStack(),
	}
	m := &appModel{state: state}

	// The main menu pushes itself at construction and anchors the stack.
	m.current = newMainMenuView(state)
	return m
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m *appModel) Init() tea.Cmd {
	return m.current.Init()
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Forward so viewport-backed screens can resize.
		_, cmd := m.current.Update(msg)
		cmds = append(cmds, cmd)

	case quitMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		cmd, handled := m.handleGlobalKey(msg)
		if handled {
			cmds = append(cmds, cmd)
			break
		}
		_, cmd = m.current.Update(msg)
		cmds = append(cmds, cmd)

	default:
		_, cmd := m.current.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Resolve at most one pending transition per cycle. Forward
	// transitions initialise the new screen; regressions re-activate an
	// existing instance and tell it exactly once that it was returned to.
	if next, regress := m.state.Nav.Resolve(); next != nil {
		m.current = next
		if regress {
			_, cmd := next.Update(screenReturnedMsg{})
			cmds = append(cmds, cmd)
		} else {
			cmds = append(cmds, next.Init())
		}
	}

	return m, tea.Batch(cmds...)
}

// handleGlobalKey processes keys that work on every screen. It reports
// whether the key was consumed.
func (m *appModel) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	// ctrl+c quits even while a text input is focused.
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit, true
	}

	// Screens with a focused text input get every other key, including
	// the global shortcuts, so activity names can contain q and a.
	if viewCapturesInput(m.current) {
		return nil, false
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return tea.Quit, true

	case "a":
		// Quick-add from the main menu without walking the config screens.
		if m.current.ID() == ViewMainMenu {
			m.state.Nav.AdvanceTo(newQuickAddView(m.state))
			return nil, true
		}
	}

	return nil, false
}

func (m *appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.current.View(),
		m.renderStatusBar(),
	}
	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("planner")

	var crumbs []string
	for _, v := range m.state.Nav.Screens() {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.current.ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	if !viewCapturesInput(m.current) {
		hints = append(hints, formatter.Dim("q: quit"))
	}
	return strings.Join(hints, "  ")
}
