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
	pastPlansLoadedMsg struct {
		plans []*domain.WeekPlan
		err   error
	}
	planChosenMsg struct{ plan *domain.WeekPlan }
)

// pastPlansView lists exported plans by date, newest first.
type pastPlansView struct {
	state *SharedState
	menu  *widget.ListMenu
	err   error
	empty bool
}

func newPastPlansView(state *SharedState) *pastPlansView {
	v := &pastPlansView{
		state: state,
		menu:  widget.NewListMenu("Past Plans", nil),
	}
	state.Nav.Push(v)
	return v
}

func (v *pastPlansView) ID() ViewID    { return ViewPastPlans }
func (v *pastPlansView) Title() string { return "past plans" }

func (v *pastPlansView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding("↑/↓", "move"),
		helpBinding("enter", "view"),
		helpBinding("esc", "back"),
	}
}

func (v *pastPlansView) Init() tea.Cmd { return v.load }

func (v *pastPlansView) load() tea.Msg {
	plans, err := v.state.App.Plans.List(context.Background())
	return pastPlansLoadedMsg{plans: plans, err: err}
}

func (v *pastPlansView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pastPlansLoadedMsg:
		v.err = msg.err
		if msg.err != nil {
			break
		}
		v.empty = len(msg.plans) == 0
		items := make([]widget.Item, 0, len(msg.plans)+1)
		for i := len(msg.plans) - 1; i >= 0; i-- {
			p := msg.plans[i]
			items = append(items, widget.Item{
				Label:  p.Date.Format("2006-01-02"),
				Action: planChosenMsg{plan: p},
			})
		}
		items = append(items, widget.Item{Label: widget.BackLabel, Action: backMsg{}})
		v.menu.SetItems(items)

	case planChosenMsg:
		v.state.Nav.AdvanceTo(newPlanPreviewView(v.state, msg.plan))

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

func (v *pastPlansView) View() string {
	if v.err != nil {
		return formatter.Center(formatter.StyleRed.Render(v.err.Error()), v.state.Width)
	}
	v.menu.SetSize(v.state.Width, v.state.ContentHeight())
	out := v.menu.Render()
	if v.empty {
		out += "\n" + formatter.Center(formatter.Dim("No plans exported yet."), v.state.Width)
	}
	return out
}
