package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"starbank/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id|index>",
		Short: "Delete one of today's tasks (no undo)",
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

			res, err := store.DeleteTask(ctx, resolveTaskID(store, args[0]))
			if err != nil {
				return err
			}
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No matching task in today's list."))
				return nil
			}
			suffix := ""
			if res.StarsDelta != 0 {
				suffix = ui.Muted.Render(fmt.Sprintf(" (%d%s)", res.StarsDelta, ui.IconStar))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s%s\n",
				ui.Warn.Render(ui.IconTrash+" Deleted"), res.Task.Name, suffix)
			return nil
		},
	}

	return cmd
}
