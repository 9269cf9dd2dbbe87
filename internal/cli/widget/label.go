package widget

import (
	"fmt"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// Label is static text. It never takes focus.
type Label struct {
	text string
}

func NewLabel(text string) *Label {
	return &Label{text: text}
}

// SetText replaces the label text, used by screens that refresh a
// displayed value in place.
func (l *Label) SetText(text string) {
	l.text = text
}

func (l *Label) Text() string { return l.text }

func (l *Label) Selectable() bool             { return false }
func (l *Label) Selected() bool               { return false }
func (l *Label) SetSelected(bool)             {}
func (l *Label) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

func (l *Label) Render(width int) string {
	return formatter.Center(formatter.StyleGreen.Render(fmt.Sprintf("⌡%s⌠", l.text)), width)
}
