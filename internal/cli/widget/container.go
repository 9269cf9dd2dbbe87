package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Container holds an ordered widget sequence and owns focus: at most
// one widget is selected, and up/down cycle focus across the
// selectable ones.
type Container struct {
	widgets []Widget
}

func NewContainer() *Container {
	return &Container{}
}

// Add appends a widget. The first selectable widget added receives the
// initial focus.
func (c *Container) Add(w Widget) {
	c.widgets = append(c.widgets, w)
	if w.Selectable() && c.selectedIndex() == -1 {
		w.SetSelected(true)
	}
}

// Selected returns the focused widget, or nil.
func (c *Container) Selected() Widget {
	if i := c.selectedIndex(); i >= 0 {
		return c.widgets[i]
	}
	return nil
}

// Widgets returns the widget sequence in order.
func (c *Container) Widgets() []Widget {
	return c.widgets
}

// HandleKey moves focus on up/down and forwards any other key to the
// focused widget. With no selectable widgets, navigation keys are a
// no-op.
func (c *Container) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyDown:
		c.moveFocus(1)
		return nil
	case tea.KeyUp:
		c.moveFocus(-1)
		return nil
	}

	if w := c.Selected(); w != nil {
		return w.HandleKey(msg)
	}
	return nil
}

// moveFocus scans from the focused widget in the given direction,
// skipping non-selectable widgets and wrapping modulo the widget
// count. Terminates because the focused widget itself is selectable.
func (c *Container) moveFocus(dir int) {
	i := c.selectedIndex()
	if i < 0 {
		return
	}
	n := len(c.widgets)
	j := ((i+dir)%n + n) % n
	for !c.widgets[j].Selectable() {
		j = ((j+dir)%n + n) % n
	}
	c.widgets[i].SetSelected(false)
	c.widgets[j].SetSelected(true)
}

func (c *Container) selectedIndex() int {
	for i, w := range c.widgets {
		if w.Selected() {
			return i
		}
	}
	return -1
}

// Render draws every widget in order, one per row.
func (c *Container) Render(width int) string {
	lines := make([]string, 0, len(c.widgets))
	for _, w := range c.widgets {
		lines = append(lines, w.Render(width))
	}
	return strings.Join(lines, "\n")
}
