package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"starbank/internal/ui"
)

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "List today's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			tasks := store.TodayTasks()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconStar, "Today"))
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No tasks yet. Add one with `sb add`."))
				return nil
			}
			for i, t := range tasks {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s %s %s %s %s\n",
					i+1,
					ui.TaskCheckbox(t.Completed),
					ui.CategoryIcon(t.Category),
					t.Name,
					ui.Stars(t.Stars),
					ui.Dim.Render(shortID(t.ID)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
				ui.LabelValue("Progress", fmt.Sprintf("%.0f%%", store.TodayProgress())),
				ui.LabelValue("Stars today", ui.Stars(store.TodayStars())))
			return nil
		},
	}

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
