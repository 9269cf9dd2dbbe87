package cli

import (
	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// planPreviewView shows one exported plan in a scrollable viewport,
// rendered exactly as the plan file reads.
type planPreviewView struct {
	state *SharedState
	plan  *domain.WeekPlan
	vp    viewport.Model
}

func newPlanPreviewView(state *SharedState, plan *domain.WeekPlan) *planPreviewView {
	vp := viewport.New(state.Width, state.ContentHeight())
	vp.SetContent(formatter.PlanText(plan))

	v := &planPreviewView{state: state, plan: plan, vp: vp}
	state.Nav.Push(v)
	return v
}

func (v *planPreviewView) ID() ViewID    { return ViewPlanPreview }
func (v *planPreviewView) Title() string { return v.plan.Date.Format("2006-01-02") }

func (v *planPreviewView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding("↑/↓", "scroll"),
		helpBinding("esc", "back"),
	}
}

func (v *planPreviewView) Init() tea.Cmd { return nil }

func (v *planPreviewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			v.state.Nav.GoBack()
			return v, nil
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *planPreviewView) View() string {
	header := formatter.Center(formatter.StyleTitle.Render("Plan "+v.plan.Date.Format("2006-01-02")), v.state.Width)
	return header + "\n" + v.vp.View()
}
