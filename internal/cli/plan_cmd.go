package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/spf13/cobra"
)

const planDateLayout = "2006-01-02"

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect week plans",
	}

	cmd.AddCommand(
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanGenerateCmd(app),
	)

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exported plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(context.Background())
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Println(formatter.Dim("No plans exported yet."))
				return nil
			}
			fmt.Println(formatter.FormatPlanTable(plans))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <date>",
		Short: "Show one exported plan by date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(planDateLayout, args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q — expected YYYY-MM-DD", args[0])
			}
			plan, err := app.Plans.GetByDate(context.Background(), date)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlan(plan))
			return nil
		},
	}
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var export bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draw a weighted activity for every weekday",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			picks, err := app.Suggest.PickWeek(ctx)
			if err != nil {
				return err
			}

			plan, err := domain.NewWeekPlan(time.Now(), picks)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlan(plan))

			if export {
				file, err := app.Plans.Export(ctx, picks)
				if err != nil {
					return err
				}
				fmt.Printf("\nExported to %s.\n", formatter.Bold(file))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&export, "export", false, "save the generated plan to the data directory")
	return cmd
}
