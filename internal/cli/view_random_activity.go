package cli

import (
	"context"
	"errors"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	"github.com/Eatkin/week-planner-cli/internal/cli/widget"
	"github.com/Eatkin/week-planner-cli/internal/scheduler"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	rerollActivityMsg struct{}
	activityPickedMsg struct {
		name string
		err  error
	}
)

// randomActivityView draws one history-weighted activity and lets the
// user keep rerolling until something appeals.
type randomActivityView struct {
	state     *SharedState
	container *widget.Container
	activity  *widget.Label
	err       error
}

func newRandomActivityView(state *SharedState) *randomActivityView {
	activity := widget.NewLabel("...")

	c := widget.NewContainer()
	c.Add(widget.NewLabel("Your random activity is:"))
	c.Add(activity)
	c.Add(widget.NewButton("I don't want to do that", rerollActivityMsg{}))
	c.Add(widget.NewButton("Back", backMsg{}))

	v := &randomActivityView{state: state, container: c, activity: activity}
	state.Nav.Push(v)
	return v
}

func (v *randomActivityView) ID() ViewID    { return ViewRandomActivity }
func (v *randomActivityView) Title() string { return "random activity" }

func (v *randomActivityView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding("enter", "select"),
		helpBinding("esc", "back"),
	}
}

func (v *randomActivityView) Init() tea.Cmd { return v.pick }

func (v *randomActivityView) pick() tea.Msg {
	name, err := v.state.App.Suggest.Pick(context.Background())
	return activityPickedMsg{name: name, err: err}
}

func (v *randomActivityView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case activityPickedMsg:
		v.err = msg.err
		if msg.err == nil {
			v.activity.SetText(msg.name)
		}
	case rerollActivityMsg:
		return v, v.pick
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

func (v *randomActivityView) View() string {
	if v.err != nil {
		text := "Something went wrong: " + v.err.Error()
		if errors.Is(v.err, scheduler.ErrNoEligibleActivity) {
			text = "No activities with a priority above Ignore. Add some under Config."
		}
		return formatter.Center(formatter.StyleRed.Render(text), v.state.Width)
	}
	return v.container.Render(v.state.Width)
}
