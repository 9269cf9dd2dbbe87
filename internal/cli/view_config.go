package cli

import (
	"github.com/Eatkin/week-planner-cli/internal/cli/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Config menu actions.
type (
	openNewActivityMsg    struct{}
	openEditActivitiesMsg struct{}
	openWeekConfigMsg     struct{}
)

// configView is the configuration hub between the main menu and the
// activity editors.
type configView struct {
	state     *SharedState
	container *widget.Container
}

func newConfigView(state *SharedState) *configView {
	c := widget.NewContainer()
	c.Add(widget.NewLabel("Config"))
	c.Add(widget.NewButton("New Activity", openNewActivityMsg{}))
	c.Add(widget.NewButton("Edit Activities", openEditActivitiesMsg{}))
	c.Add(widget.NewButton("Week Config", openWeekConfigMsg{}))
	c.Add(widget.NewButton("Back", backMsg{}))

	v := &configView{state: state, container: c}
	state.Nav.Push(v)
	return v
}

func (v *configView) ID() ViewID    { return ViewConfig }
func (v *configView) Title() string { return "config" }

func (v *configView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding("↑/↓", "move"),
		helpBinding("enter", "select"),
	}
}

func (v *configView) Init() tea.Cmd { return nil }

func (v *configView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openNewActivityMsg:
		v.state.Nav.AdvanceTo(newNewActivityView(v.state))
	case openEditActivitiesMsg:
		v.state.Nav.AdvanceTo(newEditActivitiesView(v.state))
	case openWeekConfigMsg:
		v.state.Nav.AdvanceTo(newWeekConfigView(v.state))
	case backMsg:
		v.state.Nav.GoBack()
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			v.state.Nav.GoBack()
			return v, nil
		}
		return v, v.container.HandleKey(msg)
	}
	return v, nil
}

func (v *configView) View() string {
	return v.container.Render(v.state.Width)
}
