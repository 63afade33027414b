package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"starbank/internal/ui"
)

func newAdjustCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "adjust <stars>",
		Short: "Overwrite the cumulative star total (admin only)",
		Long: `Directly set the cumulative star total, bypassing task accounting.

Requires the admin password (set one with 'sb passwd' first). The star
milestone achievements are re-checked against the new total.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("star total is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("star total must be an integer")
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

			if !store.HasPassword() {
				return errors.New("no admin password set; run `sb passwd` first")
			}
			if !store.VerifyPassword(password) {
				return errors.New("wrong admin password")
			}

			value, _ := strconv.Atoi(args[0])
			if _, err := store.AdjustTotalStars(ctx, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconDone+" Adjusted"),
				ui.LabelValue("Total", ui.Stars(store.TotalStars())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Admin password")

	return cmd
}
