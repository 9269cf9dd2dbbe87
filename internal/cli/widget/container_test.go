package widget

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyDown() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyDown} }
func keyUp() tea.KeyMsg    { return tea.KeyMsg{Type: tea.KeyUp} }
func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

type pressedMsg struct{ label string }

func buildMenu(labels ...string) (*Container, []*Button) {
	c := NewContainer()
	c.Add(NewLabel("title"))
	var buttons []*Button
	for _, l := range labels {
		b := NewButton(l, pressedMsg{label: l})
		buttons = append(buttons, b)
		c.Add(b)
	}
	return c, buttons
}

func TestContainer_FirstSelectableGetsInitialFocus(t *testing.T) {
	c, buttons := buildMenu("one", "two")

	assert.Same(t, buttons[0], c.Selected())
}

func TestContainer_DownSkipsLabelsAndWraps(t *testing.T) {
	c := NewContainer()
	c.Add(NewLabel("a"))
	first := NewButton("first", nil)
	c.Add(first)
	c.Add(NewLabel("b"))
	second := NewButton("second", nil)
	c.Add(second)
	c.Add(NewLabel("c"))

	c.HandleKey(keyDown())
	assert.Same(t, second, c.Selected())

	// Wraps past the trailing label back to the first button.
	c.HandleKey(keyDown())
	assert.Same(t, first, c.Selected())
}

func TestContainer_UpMovesBackwards(t *testing.T) {
	c, buttons := buildMenu("one", "two", "three")

	c.HandleKey(keyUp())
	assert.Same(t, buttons[2], c.Selected())
}

func TestContainer_NDownsReturnToStart(t *testing.T) {
	// Focus-cycle property: down pressed once per selectable widget
	// lands back on the original widget.
	c, buttons := buildMenu("one", "two", "three", "four")

	for i := 0; i < len(buttons); i++ {
		c.HandleKey(keyDown())
	}
	assert.Same(t, buttons[0], c.Selected())
}

func TestContainer_ExactlyOneWidgetSelected(t *testing.T) {
	c, _ := buildMenu("one", "two", "three")

	keys := []tea.KeyMsg{keyDown(), keyDown(), keyUp(), keyDown(), keyUp(), keyUp()}
	for _, k := range keys {
		c.HandleKey(k)
		count := 0
		for _, w := range c.Widgets() {
			if w.Selected() {
				count++
			}
		}
		assert.Equal(t, 1, count)
	}
}

func TestContainer_NoSelectableWidgetsNavigationIsNoop(t *testing.T) {
	c := NewContainer()
	c.Add(NewLabel("only"))
	c.Add(NewLabel("labels"))

	assert.Nil(t, c.HandleKey(keyDown()))
	assert.Nil(t, c.HandleKey(keyUp()))
	assert.Nil(t, c.Selected())
}

func TestContainer_OtherKeysGoToFocusedWidgetOnly(t *testing.T) {
	c, _ := buildMenu("one", "two")
	c.HandleKey(keyDown())

	cmd := c.HandleKey(keyEnter())
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, pressedMsg{label: "two"}, msg)
}

func TestButton_EnterEmitsAction(t *testing.T) {
	b := NewButton("go", pressedMsg{label: "go"})

	cmd := b.HandleKey(keyEnter())
	require.NotNil(t, cmd)
	assert.Equal(t, pressedMsg{label: "go"}, cmd())

	assert.Nil(t, b.HandleKey(keyDown()))
}

func TestCombobox_LeftRightClampAtEnds(t *testing.T) {
	c := NewCombobox([]string{"a", "b", "c"})

	c.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, c.Index())

	c.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	c.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	c.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, "c", c.Value())
}

func TestCombobox_SetIndexClampsStoredValuesAboveScale(t *testing.T) {
	c := NewCombobox([]string{"a", "b", "c"})

	c.SetIndex(25)
	assert.Equal(t, 2, c.Index())

	c.SetIndex(-3)
	assert.Equal(t, 0, c.Index())
}

func TestCombobox_SetValue(t *testing.T) {
	c := NewCombobox([]string{"Reading", "Gaming"})

	assert.True(t, c.SetValue("Gaming"))
	assert.Equal(t, "Gaming", c.Value())
	assert.False(t, c.SetValue("Skydiving"))
}

func TestTextField_TypingAndEscapeClear(t *testing.T) {
	f := NewTextField("name")
	f.SetSelected(true)

	for _, r := range "Reading" {
		f.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "Reading", f.Value())

	f.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "Readin", f.Value())

	f.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", f.Value())
}

func TestTextField_FocusFollowsSelection(t *testing.T) {
	f := NewTextField("name")

	f.SetSelected(true)
	f.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	f.SetSelected(false)

	// Keys while unfocused must not grow the text.
	f.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	assert.Equal(t, "a", f.Value())
}

func TestLabel_NeverSelectable(t *testing.T) {
	l := NewLabel("hello")
	assert.False(t, l.Selectable())
	l.SetSelected(true)
	assert.False(t, l.Selected())
}
