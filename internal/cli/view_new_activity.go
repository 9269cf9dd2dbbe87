package cli

import (
	"context"
	"errors"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	"github.com/Eatkin/week-planner-cli/internal/cli/widget"
	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/Eatkin/week-planner-cli/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	createActivityMsg  struct{}
	activityCreatedMsg struct{ err error }
)

// newActivityView creates an activity from a typed name and a priority
// combobox. Rejected input (empty or duplicate name) shows inline and
// keeps the typed text for correction.
type newActivityView struct {
	state     *SharedState
	container *widget.Container
	name      *widget.TextField
	priority  *widget.Combobox
	errText   string
}

func newNewActivityView(state *SharedState) *newActivityView {
	name := widget.NewTextField("activity name")
	priority := widget.NewCombobox(domain.PriorityLabels)
	priority.SetIndex(1) // default Low rather than Ignore

	c := widget.NewContainer()
	c.Add(widget.NewLabel("New Activity"))
	c.Add(name)
	c.Add(widget.NewLabel("Priority"))
	c.Add(priority)
	c.Add(widget.NewButton("Create Activity", createActivityMsg{}))
	c.Add(widget.NewButton("Back", backMsg{}))

	v := &newActivityView{state: state, container: c, name: name, priority: priority}
	state.Nav.Push(v)
	return v
}

func (v *newActivityView) ID() ViewID    { return ViewNewActivity }
func (v *newActivityView) Title() string { return "new activity" }

func (v *newActivityView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding("↑/↓", "move"),
		helpBinding("enter", "select"),
		helpBinding("esc", "clear/back"),
	}
}

// CapturesInput keeps global shortcuts out of the name field while it
// is focused, so names can contain q and a.
func (v *newActivityView) CapturesInput() bool {
	return v.name.Selected()
}

func (v *newActivityView) Init() tea.Cmd { return nil }

func (v *newActivityView) create() tea.Msg {
	a := domain.Activity{Name: v.name.Value(), Priority: v.priority.Index()}
	return activityCreatedMsg{err: v.state.App.Activities.Create(context.Background(), a)}
}

func (v *newActivityView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createActivityMsg:
		return v, v.create

	case activityCreatedMsg:
		if msg.err != nil {
			v.errText = msg.err.Error()
			if errors.Is(msg.err, service.ErrDuplicateActivity) {
				v.errText = "An activity with that name already exists."
			}
			break
		}
		v.state.Nav.GoBack()

	case backMsg:
		v.state.Nav.GoBack()

	case tea.KeyMsg:
		// Escape backs out only when it cannot mean "clear the field".
		if msg.Type == tea.KeyEsc && !v.name.Selected() {
			v.state.Nav.GoBack()
			return v, nil
		}
		v.errText = ""
		return v, v.container.HandleKey(msg)
	}
	return v, nil
}

func (v *newActivityView) View() string {
	out := v.container.Render(v.state.Width)
	if v.errText != "" {
		out += "\n" + formatter.Center(formatter.StyleRed.Render(v.errText), v.state.Width)
	}
	return out
}
