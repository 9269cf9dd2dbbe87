package widget

import (
	"fmt"
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chosenMsg struct{ label string }

func menuItems(labels ...string) []Item {
	items := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = Item{Label: l, Action: chosenMsg{label: l}}
	}
	return items
}

func newTestMenu(n, width, height int) *ListMenu {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("item %d", i)
	}
	m := NewListMenu("Menu", menuItems(labels...))
	m.SetSize(width, height)
	return m
}

func TestListMenu_UpDownMoveSelection(t *testing.T) {
	m := newTestMenu(5, 40, 20)

	assert.Nil(t, m.HandleKey(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, 1, m.SelectedIndex())

	assert.Nil(t, m.HandleKey(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestListMenu_WrapAtBothEnds(t *testing.T) {
	m := newTestMenu(5, 40, 20)

	m.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 4, m.SelectedIndex())

	m.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestListMenu_PageKeysClampInsteadOfWrapping(t *testing.T) {
	m := newTestMenu(15, 40, 20)

	m.HandleKey(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 10, m.SelectedIndex())

	m.HandleKey(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 14, m.SelectedIndex())

	m.HandleKey(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 4, m.SelectedIndex())

	m.HandleKey(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestListMenu_HomeEndJump(t *testing.T) {
	m := newTestMenu(30, 40, 20)

	m.HandleKey(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 29, m.SelectedIndex())

	m.HandleKey(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestListMenu_EnterReturnsSelectedAction(t *testing.T) {
	m := newTestMenu(5, 40, 20)
	m.HandleKey(tea.KeyMsg{Type: tea.KeyDown})

	got := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, chosenMsg{label: "item 1"}, got)
}

func TestListMenu_EscapeActivatesBackItem(t *testing.T) {
	items := menuItems("one", "two")
	items = append(items, Item{Label: BackLabel, Action: chosenMsg{label: "back"}})
	m := NewListMenu("Menu", items)
	m.SetSize(40, 20)

	got := m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, chosenMsg{label: "back"}, got)
	// Escape bypasses the selection entirely.
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestListMenu_EscapePrefersTrailingBackOverActivityNamedBack(t *testing.T) {
	items := []Item{
		{Label: "Back", Action: chosenMsg{label: "an activity called Back"}},
		{Label: "two", Action: chosenMsg{label: "two"}},
		{Label: BackLabel, Action: chosenMsg{label: "real back"}},
	}
	m := NewListMenu("Menu", items)
	m.SetSize(40, 20)

	got := m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, chosenMsg{label: "real back"}, got)
}

func TestListMenu_EscapeWithoutBackItemIsNoop(t *testing.T) {
	m := newTestMenu(3, 40, 20)

	assert.Nil(t, m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}))
}

func TestListMenu_ScrollFollowsSelection(t *testing.T) {
	// Height 10 with a 2-row title leaves an 8-row viewport.
	m := newTestMenu(30, 40, 10)

	m.HandleKey(tea.KeyMsg{Type: tea.KeyEnd})
	m.Render()
	assert.Equal(t, 29-8+1, m.ScrollOffset())

	m.HandleKey(tea.KeyMsg{Type: tea.KeyHome})
	m.Render()
	assert.Equal(t, 0, m.ScrollOffset())
}

func TestListMenu_ScrollInvariantUnderRandomKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	keys := []tea.KeyType{
		tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown, tea.KeyHome, tea.KeyEnd,
	}

	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(40) + 1
		height := rng.Intn(20) + 4
		m := newTestMenu(n, 40, height)
		vh := height - 2

		for step := 0; step < 200; step++ {
			m.HandleKey(tea.KeyMsg{Type: keys[rng.Intn(len(keys))]})
			m.Render()

			sel, off := m.SelectedIndex(), m.ScrollOffset()
			require.GreaterOrEqual(t, sel, 0, "trial %d step %d", trial, step)
			require.Less(t, sel, n, "trial %d step %d", trial, step)
			require.LessOrEqual(t, off, sel,
				"trial %d step %d: offset %d above selection %d", trial, step, off, sel)
			require.Less(t, sel, off+max(vh, 1),
				"trial %d step %d: selection %d below viewport (offset %d, vh %d)", trial, step, sel, off, vh)
		}
	}
}

func TestListMenu_WordWrapKeepsLinesWithinWidth(t *testing.T) {
	long := "a very long activity label that cannot possibly fit on one terminal row"
	m := NewListMenu("Menu", menuItems(long, "short"))
	m.SetSize(20, 20)

	for _, line := range wrapWords(long, 20) {
		assert.LessOrEqual(t, len(line), 20)
	}
	assert.NotEmpty(t, m.Render())
}

func TestListMenu_WrappedSelectionTriggersRescroll(t *testing.T) {
	// Every item wraps to several rows, so item-count scrolling alone
	// would leave the selected row off screen; the render pass must
	// recompute and still show it.
	long := "one two three four five six seven eight nine ten eleven twelve"
	labels := make([]string, 8)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d %s", i, long)
	}
	m := NewListMenu("Menu", menuItems(labels...))
	m.SetSize(16, 12)

	m.HandleKey(tea.KeyMsg{Type: tea.KeyEnd})
	out := m.Render()

	assert.NotEmpty(t, out)
	assert.LessOrEqual(t, m.ScrollOffset(), m.SelectedIndex())
	// The selected item's first wrapped row must have been rendered.
	assert.Contains(t, out, "7 one")
}

func TestListMenu_SetItemsClampsSelection(t *testing.T) {
	m := newTestMenu(10, 40, 20)
	m.HandleKey(tea.KeyMsg{Type: tea.KeyEnd})

	m.SetItems(menuItems("only", "two"))
	assert.Equal(t, 1, m.SelectedIndex())
}
