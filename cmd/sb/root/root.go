package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"starbank/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sb",
	Short:         "StarBank, a star-powered task tracker for kids",
	Long:          "StarBank is a local-first CLI/TUI task tracker: finish tasks, earn stars, unlock achievements and keep your streak alive.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the StarBank database (default ~/.starbank.db)")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newUndoCmd(),
		newRmCmd(),
		newClearCmd(),
		newTodayCmd(),
		newStatusCmd(),
		newReportCmd(),
		newTemplateCmd(),
		newExportCmd(),
		newImportCmd(),
		newPasswdCmd(),
		newAdjustCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
