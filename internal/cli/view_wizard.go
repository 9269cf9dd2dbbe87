package cli

import (
	"context"
	"errors"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/Eatkin/week-planner-cli/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type quickAddResultMsg struct{ err error }

// quickAddView wraps a huh form that creates an activity without
// walking through the config screens. It sits on the navigation stack
// like any other screen.
type quickAddView struct {
	state    *SharedState
	form     *huh.Form
	name     string
	priority int
	errText  string
	creating bool
}

func newQuickAddView(state *SharedState) *quickAddView {
	v := &quickAddView{state: state, priority: 1}
	v.form = newQuickAddForm(&v.name, &v.priority)
	state.Nav.Push(v)
	return v
}

func (v *quickAddView) ID() ViewID    { return ViewQuickAdd }
func (v *quickAddView) Title() string { return "quick add" }

func (v *quickAddView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding("enter", "confirm"),
		helpBinding("esc", "cancel"),
	}
}

// CapturesInput: the form owns every key while open.
func (v *quickAddView) CapturesInput() bool { return true }

func (v *quickAddView) Init() tea.Cmd { return v.form.Init() }

func (v *quickAddView) create() tea.Msg {
	a := domain.Activity{Name: v.name, Priority: v.priority}
	return quickAddResultMsg{err: v.state.App.Activities.Create(context.Background(), a)}
}

func (v *quickAddView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case quickAddResultMsg:
		v.creating = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			if errors.Is(msg.err, service.ErrDuplicateActivity) {
				v.errText = "An activity with that name already exists."
			}
			return v, nil
		}
		v.state.Nav.GoBack()
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			v.state.Nav.GoBack()
			return v, nil
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted && !v.creating {
		v.creating = true
		return v, tea.Batch(cmd, v.create)
	}
	return v, cmd
}

func (v *quickAddView) View() string {
	out := v.form.View()
	if v.errText != "" {
		out += "\n" + formatter.StyleRed.Render(v.errText)
	}
	if v.creating {
		out += "\n" + formatter.Dim("Saving...")
	}
	return out
}
