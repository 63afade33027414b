package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"starbank/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show star totals, streak and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconPiggy, "StarBank Status"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total stars", ui.Stars(store.TotalStars())))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%d days %s", store.Streak(), ui.IconFire)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Today", fmt.Sprintf("%.0f%% done, %d%s", store.TodayProgress(), store.TodayStars(), ui.IconStar)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			weekly := store.WeeklyStats()
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📅 Last 7 days"))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %d%s\n", ui.Key.Render("Stars:"), weekly.TotalStars, ui.IconStar)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %.0f%%\n", ui.Key.Render("Completion:"), weekly.CompletionRate)
			fmt.Fprintln(cmd.OutOrStdout(), "")

			achievements := store.Achievements()
			unlocked := 0
			for _, a := range achievements {
				if a.Unlocked {
					unlocked++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, unlocked, len(achievements))))
			for _, a := range achievements {
				if a.Unlocked {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", a.Icon, ui.Gold.Render(a.Name), ui.Muted.Render(a.Description))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "- 🔒 %s\n", ui.Muted.Render(a.Name+" · "+a.Description))
				}
			}

			return nil
		},
	}

	return cmd
}
