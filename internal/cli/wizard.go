package cli

import (
	"fmt"
	"strings"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// plannerHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func plannerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: yellow accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorYellow).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorYellow)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorBg).Background(formatter.ColorYellow).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorYellow)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorYellow)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newQuickAddForm builds the quick-add form: an activity name and a
// priority from the labelled scale.
func newQuickAddForm(name *string, priority *int) *huh.Form {
	options := make([]huh.Option[int], 0, len(domain.PriorityLabels))
	for p, label := range domain.PriorityLabels {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%d)", label, p), p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity name").
				Placeholder("e.g. Reading").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}).
				Value(name),
			huh.NewSelect[int]().
				Title("Priority").
				Options(options...).
				Value(priority),
		),
	).WithTheme(plannerHuhTheme()).WithShowHelp(false)
}
