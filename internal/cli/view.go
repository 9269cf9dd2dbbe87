package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of screen in the TUI.
type ViewID int

const (
	ViewMainMenu ViewID = iota
	ViewWeekPlanner
	ViewRandomActivity
	ViewConfig
	ViewEditActivities
	ViewEditActivity
	ViewNewActivity
	ViewWeekConfig
	ViewPastPlans
	ViewPlanPreview
	ViewQuickAdd
)

// View is the interface all screens implement. It extends tea.Model
// with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this screen
}

// helpBinding builds a status-bar key hint.
func helpBinding(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, desc))
}

// inputCapturer is implemented by screens that own a focused text
// input and need every key, including the global shortcuts.
type inputCapturer interface {
	CapturesInput() bool
}

// viewCapturesInput reports whether the active screen should receive
// all key events, bypassing global keybindings like q.
func viewCapturesInput(v View) bool {
	if c, ok := v.(inputCapturer); ok {
		return c.CapturesInput()
	}
	return false
}
