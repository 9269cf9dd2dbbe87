package cli

import (
	"github.com/Eatkin/week-planner-cli/internal/cli/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// weekConfigView is a placeholder for choosing which weekdays get
// planned. Every plan covers Monday through Sunday for now.
type weekConfigView struct {
	state     *SharedState
	container *widget.Container
}

func newWeekConfigView(state *SharedState) *weekConfigView {
	c := widget.NewContainer()
	c.Add(widget.NewLabel("Week Config"))
	c.Add(widget.NewLabel("Coming soon!"))
	c.Add(widget.NewButton("Back", backMsg{}))

	v := &weekConfigView{state: state, container: c}
	state.Nav.Push(v)
	return v
}

func (v *weekConfigView) ID() ViewID    { return ViewWeekConfig }
func (v *weekConfigView) Title() string { return "week config" }

func (v *weekConfigView) ShortHelp() []key.Binding {
	return []key.Binding{helpBinding("esc", "back")}
}

func (v *weekConfigView) Init() tea.Cmd { return nil }

func (v *weekConfigView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
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

func (v *weekConfigView) View() string {
	return v.container.Render(v.state.Width)
}
