package formatter

import (
	"fmt"
	"strings"

	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// FormatActivityTable renders the activity set as an aligned table for
// non-TUI command output.
func FormatActivityTable(activities []domain.Activity) string {
	table := uitable.New()
	table.MaxColWidth = 50

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	table.AddRow(bold.Sprint("ACTIVITY"), bold.Sprint("PRIORITY"), bold.Sprint("WEIGHT"))
	for _, a := range activities {
		weight := fmt.Sprintf("%d", a.Priority)
		if a.Priority == 0 {
			weight = faint.Sprint("never drawn")
		}
		table.AddRow(a.Name, a.PriorityLabel(), weight)
	}
	return table.String()
}

// FormatPlanTable renders the exported plan history, one row per plan.
func FormatPlanTable(plans []*domain.WeekPlan) string {
	table := uitable.New()
	table.MaxColWidth = 70

	bold := color.New(color.Bold)
	table.AddRow(bold.Sprint("DATE"), bold.Sprint("ACTIVITIES"))
	for _, p := range plans {
		names := make([]string, 0, len(p.Entries))
		for _, e := range p.Entries {
			names = append(names, e.Activity)
		}
		table.AddRow(p.Date.Format("2006-01-02"), strings.Join(names, ", "))
	}
	return table.String()
}

// FormatPlan renders one plan in the export file's own day-per-line
// shape, with the day names emphasised.
func FormatPlan(p *domain.WeekPlan) string {
	var b strings.Builder
	title := color.New(color.Bold, color.Underline)
	b.WriteString(title.Sprintf("Week plan %s", p.Date.Format("2006-01-02")))
	b.WriteString("\n")

	day := color.New(color.FgHiYellow)
	for _, e := range p.Entries {
		b.WriteString(fmt.Sprintf("%s: %s\n", day.Sprintf("%-9s", e.Day), e.Activity))
	}
	return b.String()
}

// PlanText renders a plan exactly as its export file reads, for the
// TUI preview viewport.
func PlanText(p *domain.WeekPlan) string {
	var b strings.Builder
	for _, e := range p.Entries {
		fmt.Fprintf(&b, "%s: %s\n", e.Day, e.Activity)
	}
	return b.String()
}

// FormatShellWelcome returns the banner printed when the interactive
// shell starts.
func FormatShellWelcome() string {
	var b strings.Builder
	b.WriteString(StylePurple.Render("planner shell") + "\n")
	b.WriteString(Dim("Type 'help' for commands, 'exit' to leave.") + "\n\n")
	return b.String()
}

// FormatShellHelp returns the shell's built-in command summary.
func FormatShellHelp() string {
	rows := [][2]string{
		{"activities", "list activities with priorities"},
		{"suggest", "draw a history-weighted random activity"},
		{"plan", "draw a full week (plan generate --export to save)"},
		{"plans", "list exported plans"},
		{"clear", "clear the screen"},
		{"help", "show this help"},
		{"exit", "leave the shell"},
	}
	var b strings.Builder
	b.WriteString(Header("Shell commands") + "\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", StyleGreen.Render(r[0]), Dim(r[1])))
	}
	b.WriteString(Dim("Anything else is passed to the planner command tree.") + "\n")
	return b.String()
}
