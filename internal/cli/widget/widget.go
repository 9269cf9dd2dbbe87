// Package widget provides the focusable building blocks screens are
// composed from: labels, buttons, comboboxes, text fields, the
// focus-cycling Container, and the scrollable ListMenu.
//
// Widgets do not navigate or mutate data themselves. Activating a
// widget yields a named tea.Msg the owning screen dispatches, so all
// behavior stays in the screen's Update.
package widget

import tea "github.com/charmbracelet/bubbletea"

// Widget is one on-screen element inside a Container.
type Widget interface {
	// Selectable reports whether the widget can take focus.
	Selectable() bool
	// Selected reports whether the widget currently has focus.
	Selected() bool
	// SetSelected moves focus onto or off the widget.
	SetSelected(bool)
	// HandleKey reacts to a key while focused. The returned command,
	// if any, delivers the widget's action message.
	HandleKey(msg tea.KeyMsg) tea.Cmd
	// Render draws the widget centred in the given width.
	Render(width int) string
}

func emit(msg tea.Msg) tea.Cmd {
	if msg == nil {
		return nil
	}
	return func() tea.Msg { return msg }
}
