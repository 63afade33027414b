package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"starbank/internal/progress"
	"starbank/internal/ui"
)

func newAddCmd() *cobra.Command {
	var category string
	var stars int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a task for today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cat, err := progress.ParseCategory(category)
			if err != nil {
				return err
			}

			store, cleanup, err := openStore(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := store.AddTask(ctx, args[0], cat, stars)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s (%s)\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				ui.CategoryIcon(task.Category)+" "+task.Name,
				ui.Stars(task.Stars),
				ui.Muted.Render(task.Date))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "study", "Category (study|exercise|behavior|creativity)")
	cmd.Flags().IntVarP(&stars, "stars", "s", 1, "Star value (positive integer)")

	return cmd
}
