package cli

import (
	"strings"

	"github.com/Eatkin/week-planner-cli/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Activities service.ActivityService
	Plans      service.PlanService
	Suggest    service.SuggestService

	// IsInteractive is true when stdout is a terminal; the bare
	// command then opens the TUI instead of printing help.
	IsInteractive bool
}

// NewRootCmd creates the top-level "planner" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "planner",
		Short: "Weekly activity planner with history-weighted suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	// Accept underscored flag spellings (--set_priority style) from
	// shell history and scripts.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newActivityCmd(app),
		newPlanCmd(app),
		newSuggestCmd(app),
		newTUICmd(app),
		newShellCmd(app),
	)

	return root
}
