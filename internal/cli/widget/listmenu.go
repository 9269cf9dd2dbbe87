package widget

import (
	"strings"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// listPageSize is how many items page up/down jump by.
const listPageSize = 10

// BackLabel is the item label the cancel key looks for. Screens append
// their back item last, and escape activates it directly, bypassing
// normal confirmation.
const BackLabel = "Back"

// Item is one ListMenu row: a label and the action message returned
// when the row is confirmed.
type Item struct {
	Label  string
	Action tea.Msg
}

// ListMenu is a scrollable single-column menu with its own selection
// and scroll state, independent of Container. After every render the
// selected row sits inside the viewport:
// scrollOffset ≤ selectedIndex < scrollOffset + viewportHeight.
type ListMenu struct {
	title    string
	items    []Item
	selected int
	offset   int

	width  int
	height int

	// Rows the rendered title block occupies, recomputed each render.
	titleHeight int
}

func NewListMenu(title string, items []Item) *ListMenu {
	m := &ListMenu{title: title, items: items}
	m.titleHeight = m.measureTitle()
	return m
}

// SetItems replaces the menu rows, keeping the selection in range.
func (m *ListMenu) SetItems(items []Item) {
	m.items = items
	if m.selected >= len(items) {
		m.selected = len(items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// SetSize records the viewport dimensions used for scrolling and
// wrapping.
func (m *ListMenu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ListMenu) SelectedIndex() int { return m.selected }

// Select moves the selection, clamped into range.
func (m *ListMenu) Select(i int) {
	switch {
	case len(m.items) == 0:
		m.selected = 0
	case i < 0:
		m.selected = 0
	case i >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = i
	}
}

func (m *ListMenu) ScrollOffset() int { return m.offset }

// HandleKey processes one navigation or confirmation key. It returns
// the action bound to a confirmed item, or nil when the key only moved
// the selection.
func (m *ListMenu) HandleKey(msg tea.KeyMsg) tea.Msg {
	if len(m.items) == 0 {
		return nil
	}

	last := len(m.items) - 1
	move := 0

	switch msg.Type {
	case tea.KeyUp:
		move = -1
	case tea.KeyDown:
		move = 1
	case tea.KeyPgUp:
		move = clamp(-listPageSize, -m.selected, last-m.selected)
	case tea.KeyPgDown:
		move = clamp(listPageSize, -m.selected, last-m.selected)
	case tea.KeyHome:
		move = -m.selected
	case tea.KeyEnd:
		move = last - m.selected

	case tea.KeyEsc:
		// Fast exit: activate the "Back" item when one exists. Scanned
		// from the end because screens append it last, so an activity
		// that happens to be named "Back" cannot shadow it.
		for i := len(m.items) - 1; i >= 0; i-- {
			if m.items[i].Label == BackLabel {
				return m.items[i].Action
			}
		}
		return nil

	case tea.KeyEnter:
		return m.items[m.selected].Action
	}

	m.selected = wrap(m.selected+move, 0, last)
	m.clampScroll()
	return nil
}

// clampScroll keeps the selected row inside the viewport.
func (m *ListMenu) clampScroll() {
	vh := m.viewportHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	} else if m.selected >= m.offset+vh {
		m.offset = m.selected - vh + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *ListMenu) viewportHeight() int {
	vh := m.height - m.titleHeight
	if vh < 1 {
		return 1
	}
	return vh
}

func (m *ListMenu) measureTitle() int {
	if m.title == "" {
		return 0
	}
	return 2 // title row plus dotted underline
}

// Render draws the title block and the visible slice of items. Items
// wider than the viewport word-wrap; if wrapping pushes the selected
// row off the bottom, the scroll is recomputed and the frame rendered
// one more time.
func (m *ListMenu) Render() string {
	out, again := m.renderOnce()
	if again {
		out, _ = m.renderOnce()
	}
	return out
}

func (m *ListMenu) renderOnce() (string, bool) {
	m.titleHeight = m.measureTitle()
	m.clampScroll()
	vh := m.viewportHeight()

	var lines []string
	if m.title != "" {
		lines = append(lines, formatter.Center(formatter.StyleTitle.Render(m.title), m.width))
		lines = append(lines, formatter.StyleYellow.Render(strings.Repeat(".", max(m.width, 1))))
	}

	used := 0
	selectedVisible := false
	for i := m.offset; i < len(m.items) && used < vh; i++ {
		style := formatter.StyleFg
		if i == m.selected {
			style = formatter.StyleHighlight
		}
		for _, row := range wrapWords(m.items[i].Label, m.width) {
			if used >= vh {
				break
			}
			if i == m.selected {
				selectedVisible = true
			}
			lines = append(lines, formatter.Center(style.Render(row), m.width))
			used++
		}
	}

	if len(m.items) > 0 && !selectedVisible {
		m.offset = m.scrollForWrapped(vh)
		return "", true
	}
	return strings.Join(lines, "\n"), false
}

// scrollForWrapped finds the offset that fits the selected item's
// wrapped lines at the bottom of the viewport.
func (m *ListMenu) scrollForWrapped(vh int) int {
	off := m.selected
	total := len(wrapWords(m.items[off].Label, m.width))
	for off > 0 {
		prev := len(wrapWords(m.items[off-1].Label, m.width))
		if total+prev > vh {
			break
		}
		total += prev
		off--
	}
	return off
}

// wrapWords splits a label on spaces into lines no wider than width.
// A single word longer than the width gets a line of its own.
func wrapWords(label string, width int) []string {
	if width < 1 || len(label) <= width {
		return []string{label}
	}

	var lines []string
	var cur string
	for _, word := range strings.Split(label, " ") {
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= width:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// wrap sends a value past either bound to the opposite one.
func wrap(v, min, max int) int {
	if v < min {
		return max
	}
	if v > max {
		return min
	}
	return v
}

// clamp bounds v into [min, max].
func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
