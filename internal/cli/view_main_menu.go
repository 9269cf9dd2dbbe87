package cli

import (
	"github.com/Eatkin/week-planner-cli/internal/cli/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Main menu actions.
type (
	openWeekPlannerMsg    struct{}
	openRandomActivityMsg struct{}
	openPastPlansMsg      struct{}
	openConfigMsg         struct{}
)

// mainMenuView is the home screen and the bottom of the navigation
// stack.
type mainMenuView struct {
	state     *SharedState
	container *widget.Container
}

func newMainMenuView(state *SharedState) *mainMenuView {
	c := widget.NewContainer()
	c.Add(widget.NewLabel("Welcome to Week Planner!"))
	c.Add(widget.NewButton("Week Planner", openWeekPlannerMsg{}))
	c.Add(widget.NewButton("Random Activity", openRandomActivityMsg{}))
	c.Add(widget.NewButton("Past Plans", openPastPlansMsg{}))
	c.Add(widget.NewButton("Config", openConfigMsg{}))
	c.Add(widget.NewDangerButton("Quit", quitMsg{}))

	v := &mainMenuView{state: state, container: c}
	state.Nav.Push(v)
	return v
}

func (v *mainMenuView) ID() ViewID    { return ViewMainMenu }
func (v *mainMenuView) Title() string { return "" }

func (v *mainMenuView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding("↑/↓", "move"),
		helpBinding("enter", "select"),
		helpBinding("a", "quick add"),
	}
}

func (v *mainMenuView) Init() tea.Cmd { return nil }

func (v *mainMenuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openWeekPlannerMsg:
		v.state.Nav.AdvanceTo(newWeekPlannerView(v.state))
	case openRandomActivityMsg:
		v.state.Nav.AdvanceTo(newRandomActivityView(v.state))
	case openPastPlansMsg:
		v.state.Nav.AdvanceTo(newPastPlansView(v.state))
	case openConfigMsg:
		v.state.Nav.AdvanceTo(newConfigView(v.state))
	case tea.KeyMsg:
		return v, v.container.HandleKey(msg)
	}
	return v, nil
}

func (v *mainMenuView) View() string {
	return v.container.Render(v.state.Width)
}
