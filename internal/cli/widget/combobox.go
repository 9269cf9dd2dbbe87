package widget

import (
	"fmt"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// Combobox holds an ordered item list with one current value. Left and
// right move the index, clamped at the ends rather than wrapping; the
// boundary arrows only render while movement that way is possible.
type Combobox struct {
	items    []string
	index    int
	selected bool
}

func NewCombobox(items []string) *Combobox {
	return &Combobox{items: items}
}

// Value returns the current item, or "" when the box is empty.
func (c *Combobox) Value() string {
	if len(c.items) == 0 {
		return ""
	}
	return c.items[c.index]
}

func (c *Combobox) Index() int { return c.index }

// SetIndex moves the current value, clamping into range. Stored values
// above the item scale land on the last item instead of crashing the
// render.
func (c *Combobox) SetIndex(i int) {
	switch {
	case len(c.items) == 0:
		c.index = 0
	case i < 0:
		c.index = 0
	case i >= len(c.items):
		c.index = len(c.items) - 1
	default:
		c.index = i
	}
}

// SetValue moves the current value to the named item if present.
func (c *Combobox) SetValue(value string) bool {
	for i, item := range c.items {
		if item == value {
			c.index = i
			return true
		}
	}
	return false
}

func (c *Combobox) Selectable() bool     { return true }
func (c *Combobox) Selected() bool       { return c.selected }
func (c *Combobox) SetSelected(sel bool) { c.selected = sel }

func (c *Combobox) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyLeft:
		c.SetIndex(c.index - 1)
	case tea.KeyRight:
		c.SetIndex(c.index + 1)
	}
	return nil
}

func (c *Combobox) Render(width int) string {
	style := formatter.StyleFg
	if c.selected {
		style = formatter.StyleHighlight
	}

	left := " "
	if c.index > 0 {
		left = formatter.StyleBold.Render("◄")
	}
	right := " "
	if c.index < len(c.items)-1 {
		right = formatter.StyleBold.Render("►")
	}

	return formatter.Center(fmt.Sprintf("%s%s%s", left, style.Render(fmt.Sprintf(" %s ", c.Value())), right), width)
}
