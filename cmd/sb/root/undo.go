package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"starbank/internal/ui"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <id|index>",
		Short: "Undo a completion (gives the stars back)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id or index is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := store.UncompleteTask(ctx, resolveTaskID(store, args[0]))
			if err != nil {
				return err
			}
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No matching completed task in today's list."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d%s)\n",
				ui.Warn.Render(ui.IconUndo+" Undone"),
				res.Task.Name, res.StarsDelta, ui.IconStar)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
				ui.LabelValue("Total", ui.Stars(res.TotalStars)),
				ui.LabelValue("Streak", fmt.Sprintf("%d %s", res.Streak, ui.IconFire)))
			return nil
		},
	}

	return cmd
}
