package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage the activity set",
	}

	cmd.AddCommand(
		newActivityListCmd(app),
		newActivityAddCmd(app),
		newActivitySetPriorityCmd(app),
		newActivityRemoveCmd(app),
	)

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List activities with their priorities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Activities.List(context.Background())
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				fmt.Println(formatter.Dim("No activities yet. Add one with 'planner activity add <name>'."))
				return nil
			}
			fmt.Println(formatter.FormatActivityTable(activities))
			return nil
		},
	}
}

func newActivityAddCmd(app *App) *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePriority(priority)
			if err != nil {
				return err
			}
			a := domain.Activity{Name: args[0], Priority: p}
			if err := app.Activities.Create(context.Background(), a); err != nil {
				return err
			}
			fmt.Printf("Added %s with priority %s.\n", formatter.Bold(a.Name), a.PriorityLabel())
			return nil
		},
	}

	addPriorityFlag(cmd.Flags(), &priority)
	return cmd
}

// addPriorityFlag registers the shared --priority flag, accepted as a
// bare number or a scale label.
func addPriorityFlag(fs *pflag.FlagSet, priority *string) {
	fs.StringVarP(priority, "priority", "p", "1",
		"draw weight, a number or a label like Low, Medium, High")
}

func newActivitySetPriorityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-priority <name> <priority>",
		Short: "Change an activity's draw weight",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePriority(args[1])
			if err != nil {
				return err
			}
			if err := app.Activities.SetPriority(context.Background(), args[0], p); err != nil {
				return err
			}
			fmt.Printf("Set %s to %s.\n", formatter.Bold(args[0]), domain.Activity{Priority: p}.PriorityLabel())
			return nil
		},
	}
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Activities.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed %s.\n", formatter.Bold(args[0]))
			return nil
		},
	}
}

// parsePriority accepts either a bare number or a label from the
// priority scale, case-insensitively.
func parsePriority(s string) (int, error) {
	if p, err := strconv.Atoi(s); err == nil {
		if p < 0 {
			return 0, fmt.Errorf("priority %d must be zero or greater", p)
		}
		return p, nil
	}
	for p, label := range domain.PriorityLabels {
		if strings.EqualFold(label, s) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown priority %q — use a number or one of: %s",
		s, strings.Join(domain.PriorityLabels, ", "))
}
