package widget

import (
	"fmt"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// Button emits its action message when activated with enter.
type Button struct {
	label    string
	action   tea.Msg
	danger   bool
	selected bool
}

func NewButton(label string, action tea.Msg) *Button {
	return &Button{label: label, action: action}
}

// NewDangerButton is a Button rendered with the red focus highlight,
// used for quit and delete actions.
func NewDangerButton(label string, action tea.Msg) *Button {
	return &Button{label: label, action: action, danger: true}
}

func (b *Button) Label() string { return b.label }

func (b *Button) Selectable() bool     { return true }
func (b *Button) Selected() bool       { return b.selected }
func (b *Button) SetSelected(sel bool) { b.selected = sel }

func (b *Button) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter {
		return emit(b.action)
	}
	return nil
}

func (b *Button) Render(width int) string {
	style := formatter.StyleFg
	if b.selected {
		style = formatter.StyleHighlight
		if b.danger {
			style = formatter.StyleHighlightRed
		}
	}
	return formatter.Center(style.Render(fmt.Sprintf("[%s]", b.label)), width)
}
