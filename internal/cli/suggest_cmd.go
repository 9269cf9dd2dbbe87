package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eatkin/week-planner-cli/internal/cli/formatter"
	"github.com/Eatkin/week-planner-cli/internal/scheduler"
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Draw one history-weighted random activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := app.Suggest.Pick(context.Background())
			if errors.Is(err, scheduler.ErrNoEligibleActivity) {
				fmt.Println(formatter.Dim("No activities with a priority above Ignore. Add some with 'planner activity add'."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("You should do: %s\n", formatter.Bold(name))
			return nil
		},
	}
}
