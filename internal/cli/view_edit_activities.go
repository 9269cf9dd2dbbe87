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
	editListLoadedMsg struct {
		activities []domain.Activity
		err        error
	}
	editActivityChosenMsg struct{ name string }
)

// editActivitiesView lists every activity in a scrollable menu.
// Confirming a row opens the single-activity editor; returning from it
// reloads the list, because the activity may have been renamed away by
// a delete.
type editActivitiesView struct {
	state *SharedState
	menu  *widget.ListMenu
	err   error

	// Set when the editor above regresses back here: the edited
	// activity may be gone, so the reload nudges the selection up one
	// to stay on something that still exists.
	returnedFromEdit bool
}

func newEditActivitiesView(state *SharedState) *editActivitiesView {
	v := &editActivitiesView{
		state: state,
		menu:  widget.NewListMenu("Edit Activities", nil),
	}
	state.Nav.Push(v)
	return v
}

func (v *editActivitiesView) ID() ViewID    { return ViewEditActivities }
func (v *editActivitiesView) Title() string { return "edit activities" }

func (v *editActivitiesView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding("↑/↓", "move"),
		helpBinding("pgup/pgdn", "jump"),
		helpBinding("enter", "edit"),
		helpBinding("esc", "back"),
	}
}

func (v *editActivitiesView) Init() tea.Cmd { return v.load }

func (v *editActivitiesView) load() tea.Msg {
	activities, err := v.state.App.Activities.List(context.Background())
	return editListLoadedMsg{activities: activities, err: err}
}

func (v *editActivitiesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editListLoadedMsg:
		v.err = msg.err
		if msg.err != nil {
			break
		}
		items := make([]widget.Item, 0, len(msg.activities)+1)
		for _, a := range msg.activities {
			items = append(items, widget.Item{Label: a.Name, Action: editActivityChosenMsg{name: a.Name}})
		}
		items = append(items, widget.Item{Label: widget.BackLabel, Action: backMsg{}})
		v.menu.SetItems(items)
		if v.returnedFromEdit {
			v.returnedFromEdit = false
			if sel := v.menu.SelectedIndex(); sel > 0 {
				v.menu.Select(sel - 1)
			}
		}

	case screenReturnedMsg:
		v.returnedFromEdit = true
		return v, v.load

	case editActivityChosenMsg:
		v.state.Nav.AdvanceTo(newEditActivityView(v.state, msg.name))

	case backMsg:
		v.state.Nav.GoBack()

	case tea.KeyMsg:
		v.menu.SetSize(v.state.Width, v.state.ContentHeight())
		if action := v.menu.HandleKey(msg); action != nil {
			return v, emit(action)
		}
	}
	return v, nil
}

func (v *editActivitiesView) View() string {
	if v.err != nil {
		return formatter.Center(formatter.StyleRed.Render(v.err.Error()), v.state.Width)
	}
	v.menu.SetSize(v.state.Width, v.state.ContentHeight())
	return v.menu.Render()
}
