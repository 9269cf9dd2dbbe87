package cli

import tea "github.com/charmbracelet/bubbletea"

// Messages shared across screens. Screen-specific actions live next to
// the screen that emits them.

// backMsg asks the active screen to regress one step on the stack.
type backMsg struct{}

// quitMsg ends the program. Only the root model handles it, so any
// screen can offer a quit action.
type quitMsg struct{}

// screenReturnedMsg is delivered to a screen when a regression makes it
// the active screen again. It fires once per return, and only on
// regressions, never on the forward transition that created the screen.
type screenReturnedMsg struct{}

// emit wraps a message in a command.
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
