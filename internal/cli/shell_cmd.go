package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/Eatkin/week-planner-cli/internal/scheduler"
	prompt "github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
)

// shellSession holds mutable state across the REPL loop.
type shellSession struct {
	app      *App
	wantExit bool
}

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell with autocomplete",
		Long: `Start an interactive shell with autocomplete and styled
output. Built-ins cover the common flows; anything else is passed
through to the full planner command tree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(app)
		},
	}
}

func runShell(app *App) error {
	sess := &shellSession{app: app}

	fmt.Print(formatter.FormatShellWelcome())

	p := prompt.New(
		sess.executor,
		sess.completer,
		prompt.OptionPrefix("planner ❯ "),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return sess.wantExit
		}),
		prompt.OptionTitle("planner shell"),
		prompt.OptionPrefixTextColor(prompt.Purple),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionSuggestionTextColor(prompt.White),
		prompt.OptionSelectedSuggestionBGColor(prompt.Purple),
		prompt.OptionSelectedSuggestionTextColor(prompt.White),
		prompt.OptionDescriptionBGColor(prompt.DarkGray),
		prompt.OptionDescriptionTextColor(prompt.LightGray),
		prompt.OptionMaxSuggestion(10),
	)
	p.Run()
	return nil
}

func (s *shellSession) executor(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	parts, err := splitShellArgs(input)
	if err != nil {
		s.printErr(err)
		return
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "activities":
		s.execActivities()
	case "suggest":
		s.execSuggest()
	case "plan":
		if len(args) == 0 {
			s.execPlan()
			return
		}
		s.execCobra(parts)
	case "plans":
		s.execPlans()
	case "clear":
		fmt.Print("\033[H\033[2J")
	case "help":
		fmt.Print(formatter.FormatShellHelp())
	case "exit", "quit":
		fmt.Println(formatter.Dim("Goodbye."))
		s.wantExit = true
	case "shell":
		fmt.Println(formatter.StyleYellow.Render("Already in shell mode."))
	default:
		s.execCobra(parts)
	}
}

func (s *shellSession) completer(d prompt.Document) []prompt.Suggest {
	// Complete activity names for the commands that take one.
	fields := strings.Fields(d.TextBeforeCursor())
	if len(fields) >= 2 && fields[0] == "activity" &&
		(fields[1] == "remove" || fields[1] == "set-priority") {
		return prompt.FilterHasPrefix(s.activitySuggestions(), d.GetWordBeforeCursor(), true)
	}

	suggestions := []prompt.Suggest{
		{Text: "activities", Description: "List activities with priorities"},
		{Text: "suggest", Description: "Draw a weighted random activity"},
		{Text: "plan", Description: "Draw a full week"},
		{Text: "plans", Description: "List exported plans"},
		{Text: "activity", Description: "Manage the activity set"},
		{Text: "clear", Description: "Clear the screen"},
		{Text: "help", Description: "Show shell commands"},
		{Text: "exit", Description: "Leave the shell"},
	}
	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}

func (s *shellSession) activitySuggestions() []prompt.Suggest {
	activities, err := s.app.Activities.List(context.Background())
	if err != nil {
		return nil
	}
	suggestions := make([]prompt.Suggest, len(activities))
	for i, a := range activities {
		suggestions[i] = prompt.Suggest{Text: a.Name, Description: a.PriorityLabel()}
	}
	return suggestions
}

func (s *shellSession) execActivities() {
	activities, err := s.app.Activities.List(context.Background())
	if err != nil {
		s.printErr(err)
		return
	}
	if len(activities) == 0 {
		fmt.Println(formatter.Dim("No activities found."))
		return
	}
	fmt.Printf("%s\n", formatter.FormatActivityTable(activities))
}

func (s *shellSession) execSuggest() {
	name, err := s.app.Suggest.Pick(context.Background())
	if errors.Is(err, scheduler.ErrNoEligibleActivity) {
		fmt.Println(formatter.Dim("No activities with a priority above Ignore."))
		return
	}
	if err != nil {
		s.printErr(err)
		return
	}
	fmt.Printf("You should do: %s\n", formatter.Bold(name))
}

func (s *shellSession) execPlan() {
	picks, err := s.app.Suggest.PickWeek(context.Background())
	if err != nil {
		s.printErr(err)
		return
	}
	plan, err := domain.NewWeekPlan(time.Now(), picks)
	if err != nil {
		s.printErr(err)
		return
	}
	fmt.Print(formatter.FormatPlan(plan))
}

func (s *shellSession) execPlans() {
	plans, err := s.app.Plans.List(context.Background())
	if err != nil {
		s.printErr(err)
		return
	}
	if len(plans) == 0 {
		fmt.Println(formatter.Dim("No plans exported yet."))
		return
	}
	fmt.Printf("%s\n", formatter.FormatPlanTable(plans))
}

// execCobra passes unrecognized input through to the full command
// tree, so every planner subcommand works from the shell.
func (s *shellSession) execCobra(args []string) {
	root := NewRootCmd(s.app)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	if err := root.Execute(); err != nil {
		s.printErr(err)
	}
}

func (s *shellSession) printErr(err error) {
	fmt.Println(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err)))
}

// splitShellArgs tokenizes shell input, honoring single and double
// quotes and backslash escapes so activity names with spaces survive.
func splitShellArgs(input string) ([]string, error) {
	var parts []string
	var cur strings.Builder

	const (
		plain = iota
		single
		double
	)
	state := plain
	escaped := false
	tokenStarted := false

	flush := func() {
		parts = append(parts, cur.String())
		cur.Reset()
		tokenStarted = false
	}

	for _, r := range input {
		if escaped {
			cur.WriteRune(r)
			tokenStarted = true
			escaped = false
			continue
		}

		switch state {
		case single:
			if r == '\'' {
				state = plain
			} else {
				cur.WriteRune(r)
			}
			tokenStarted = true

		case double:
			switch r {
			case '"':
				state = plain
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
			tokenStarted = true

		default:
			switch r {
			case '\\':
				escaped = true
				tokenStarted = true
			case '\'':
				state = single
				tokenStarted = true
			case '"':
				state = double
				tokenStarted = true
			case ' ', '\t', '\n', '\r':
				if tokenStarted {
					flush()
				}
			default:
				cur.WriteRune(r)
				tokenStarted = true
			}
		}
	}

	if escaped {
		return nil, fmt.Errorf("unterminated escape sequence")
	}
	if state != plain {
		return nil, fmt.Errorf("unterminated quoted string")
	}
	if tokenStarted {
		flush()
	}

	return parts, nil
}
