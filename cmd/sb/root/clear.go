package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"starbank/internal/ui"
)

func newClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all of today's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("this deletes all of today's tasks; re-run with --yes to confirm")
			}
			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			deducted, err := store.ClearToday(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Warn.Render(ui.IconTrash+" Cleared today"),
				ui.Muted.Render(fmt.Sprintf("(-%d%s)", deducted, ui.IconStar)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm clearing today's tasks")

	return cmd
}
