package cli

import (
	"context"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	"github.com/Eatkin/week-planner-cli/internal/cli/widget"
	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	editTargetLoadedMsg struct {
		activity domain.Activity
		err      error
	}
	saveActivityMsg    struct{}
	activitySavedMsg   struct{ err error }
	deleteActivityMsg  struct{}
	activityDeletedMsg struct{ err error }
)

// editActivityView edits one activity's priority, or deletes it.
// Saving stays on the screen; deleting regresses to the list.
type editActivityView struct {
	state     *SharedState
	name      string
	container *widget.Container
	priority  *widget.Combobox
	err       error
	status    string
	statusErr bool
}

func newEditActivityView(state *SharedState, name string) *editActivityView {
	v := &editActivityView{state: state, name: name}
	state.Nav.Push(v)
	return v
}

func (v *editActivityView) ID() ViewID    { return ViewEditActivity }
func (v *editActivityView) Title() string { return v.name }

func (v *editActivityView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding("←/→", "change priority"),
		helpBinding("enter", "select"),
		helpBinding("esc", "back"),
	}
}

func (v *editActivityView) Init() tea.Cmd { return v.load }

func (v *editActivityView) load() tea.Msg {
	a, err := v.state.App.Activities.Get(context.Background(), v.name)
	return editTargetLoadedMsg{activity: a, err: err}
}

func (v *editActivityView) save() tea.Msg {
	err := v.state.App.Activities.SetPriority(context.Background(), v.name, v.priority.Index())
	return activitySavedMsg{err: err}
}

func (v *editActivityView) delete() tea.Msg {
	err := v.state.App.Activities.Delete(context.Background(), v.name)
	return activityDeletedMsg{err: err}
}

func (v *editActivityView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editTargetLoadedMsg:
		v.err = msg.err
		if msg.err == nil {
			v.build(msg.activity)
		}

	case saveActivityMsg:
		return v, v.save

	case activitySavedMsg:
		if msg.err != nil {
			v.setStatus("Save failed: "+msg.err.Error(), true)
			break
		}
		v.setStatus("Saved.", false)

	case deleteActivityMsg:
		return v, v.delete

	case activityDeletedMsg:
		if msg.err != nil {
			v.setStatus("Delete failed: "+msg.err.Error(), true)
			break
		}
		v.state.Nav.GoBack()

	case backMsg:
		v.state.Nav.GoBack()

	case tea.KeyMsg:
		if v.container == nil {
			return v, nil
		}
		if msg.Type == tea.KeyEsc {
			v.state.Nav.GoBack()
			return v, nil
		}
		return v, v.container.HandleKey(msg)
	}
	return v, nil
}

func (v *editActivityView) build(a domain.Activity) {
	v.priority = widget.NewCombobox(domain.PriorityLabels)
	v.priority.SetIndex(a.Priority)

	c := widget.NewContainer()
	c.Add(widget.NewLabel("Editing " + a.Name))
	c.Add(widget.NewLabel("Priority"))
	c.Add(v.priority)
	c.Add(widget.NewDangerButton("Delete Activity", deleteActivityMsg{}))
	c.Add(widget.NewButton("Save", saveActivityMsg{}))
	c.Add(widget.NewButton("Back", backMsg{}))
	v.container = c
}

func (v *editActivityView) setStatus(text string, isErr bool) {
	v.status = text
	v.statusErr = isErr
}

func (v *editActivityView) View() string {
	if v.err != nil {
		return formatter.Center(formatter.StyleRed.Render(v.err.Error()), v.state.Width)
	}
	if v.container == nil {
		return formatter.Center(formatter.Dim("Loading..."), v.state.Width)
	}

	out := v.container.Render(v.state.Width)
	if v.status != "" {
		style := formatter.StyleGreen
		if v.statusErr {
			style = formatter.StyleRed
		}
		out += "\n" + formatter.Center(style.Render(v.status), v.state.Width)
	}
	return out
}
