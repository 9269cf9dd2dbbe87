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
	weekActivitiesLoadedMsg struct {
		activities []domain.Activity
		err        error
	}
	randomiseWeekMsg struct{}
	weekPicksMsg     struct {
		picks []string
		err   error
	}
	exportPlanMsg   struct{}
	planExportedMsg struct {
		file string
		err  error
	}
)

// weekPlannerView assigns one activity to every weekday, either by
// hand with per-day comboboxes or in one go with the weighted
// randomiser, then exports the assignment as a plan file.
type weekPlannerView struct {
	state     *SharedState
	container *widget.Container
	combos    []*widget.Combobox
	loading   bool
	err       error
	status    string
	statusErr bool
}

func newWeekPlannerView(state *SharedState) *weekPlannerView {
	v := &weekPlannerView{state: state, loading: true}
	state.Nav.Push(v)
	return v
}

func (v *weekPlannerView) ID() ViewID    { return ViewWeekPlanner }
func (v *weekPlannerView) Title() string { return "week planner" }

func (v *weekPlannerView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding("↑/↓", "move"),
		helpBinding("←/→", "change day"),
		helpBinding("enter", "select"),
		helpBinding("esc", "back"),
	}
}

func (v *weekPlannerView) Init() tea.Cmd { return v.load }

func (v *weekPlannerView) load() tea.Msg {
	activities, err := v.state.App.Activities.List(context.Background())
	return weekActivitiesLoadedMsg{activities: activities, err: err}
}

func (v *weekPlannerView) randomise() tea.Msg {
	picks, err := v.state.App.Suggest.PickWeek(context.Background())
	return weekPicksMsg{picks: picks, err: err}
}

func (v *weekPlannerView) export() tea.Msg {
	picks := make([]string, len(v.combos))
	for i, c := range v.combos {
		picks[i] = c.Value()
	}
	file, err := v.state.App.Plans.Export(context.Background(), picks)
	return planExportedMsg{file: file, err: err}
}

func (v *weekPlannerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weekActivitiesLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.build(msg.activities)
		}

	case randomiseWeekMsg:
		return v, v.randomise

	case weekPicksMsg:
		if msg.err != nil {
			v.setStatus(msg.err.Error(), true)
			break
		}
		for i, c := range v.combos {
			if i < len(msg.picks) {
				c.SetValue(msg.picks[i])
			}
		}
		v.setStatus("", false)

	case exportPlanMsg:
		return v, v.export

	case planExportedMsg:
		if msg.err != nil {
			v.setStatus("Export failed: "+msg.err.Error(), true)
			break
		}
		v.setStatus("Exported "+msg.file, false)

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

// build lays out one label/combobox pair per weekday plus the action
// buttons.
func (v *weekPlannerView) build(activities []domain.Activity) {
	names := make([]string, len(activities))
	for i, a := range activities {
		names[i] = a.Name
	}

	c := widget.NewContainer()
	c.Add(widget.NewLabel("Week Planner"))
	v.combos = v.combos[:0]
	for _, day := range domain.Weekdays() {
		combo := widget.NewCombobox(names)
		v.combos = append(v.combos, combo)
		c.Add(widget.NewLabel(day))
		c.Add(combo)
	}
	c.Add(widget.NewButton("Randomise!", randomiseWeekMsg{}))
	c.Add(widget.NewButton("Export Plan", exportPlanMsg{}))
	c.Add(widget.NewButton("Back", backMsg{}))
	v.container = c
}

func (v *weekPlannerView) setStatus(text string, isErr bool) {
	v.status = text
	v.statusErr = isErr
}

func (v *weekPlannerView) View() string {
	switch {
	case v.loading:
		return formatter.Center(formatter.Dim("Loading activities..."), v.state.Width)
	case v.err != nil:
		return formatter.Center(formatter.StyleRed.Render(v.err.Error()), v.state.Width)
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
