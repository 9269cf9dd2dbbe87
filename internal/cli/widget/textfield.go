package widget

import (
	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextField is a single-line text entry backed by bubbles/textinput.
// Escape clears the accumulated text; focus follows selection.
type TextField struct {
	input    textinput.Model
	selected bool
}

func NewTextField(placeholder string) *TextField {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	ti.PromptStyle = formatter.StyleYellow
	ti.TextStyle = formatter.StyleFg
	ti.PlaceholderStyle = formatter.StyleDim
	return &TextField{input: ti}
}

func (f *TextField) Value() string { return f.input.Value() }

// SetValue replaces the accumulated text.
func (f *TextField) SetValue(s string) { f.input.SetValue(s) }

func (f *TextField) Selectable() bool { return true }
func (f *TextField) Selected() bool   { return f.selected }

func (f *TextField) SetSelected(sel bool) {
	f.selected = sel
	if sel {
		f.input.Focus()
	} else {
		f.input.Blur()
	}
}

func (f *TextField) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		f.input.SetValue("")
		return nil
	case tea.KeyEnter:
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *TextField) Render(width int) string {
	if !f.selected {
		text := f.input.Value()
		if text == "" {
			text = formatter.Dim(f.input.Placeholder)
		} else {
			text = formatter.StyleFg.Render(text)
		}
		return formatter.Center(text, width)
	}
	return formatter.Center(f.input.View(), width)
}
