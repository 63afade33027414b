package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"starbank/internal/ui"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"tpl"},
		Short:   "Manage reusable task templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(),
		newTemplateUseCmd(),
		newTemplateRmCmd(),
		newTemplateRestoreCmd(),
		newTemplateTrashCmd(),
	)

	return cmd
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active templates, most used first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			templates := store.ActiveTemplates()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTemplate, "Templates"))
			if len(templates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No templates yet. Adding a task creates one."))
				return nil
			}
			for _, t := range templates {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s %s %s\n",
					ui.CategoryIcon(t.Category),
					t.Name,
					ui.Stars(t.Stars),
					ui.Muted.Render(fmt.Sprintf("used %d×", t.UsageCount)),
					ui.Dim.Render(shortID(t.ID)))
			}
			return nil
		},
	}
}

func newTemplateUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Add a task for today from a template",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("template id is required")
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

			task, err := store.AddTaskFromTemplate(ctx, resolveTemplateID(store, args[0]))
			if err != nil {
				return err
			}
			if task == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No active template with that id."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				ui.CategoryIcon(task.Category)+" "+task.Name,
				ui.Stars(task.Stars))
			return nil
		},
	}
}

func newTemplateRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Move a template to the trash",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("template id is required")
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

			ok, err := store.DeleteTemplate(ctx, resolveTemplateID(store, args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No active template with that id."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconTrash+" Moved to trash (restore with `sb template restore`)"))
			return nil
		},
	}
}

func newTemplateRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a template from the trash",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("template id is required")
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

			ok, err := store.RestoreTemplate(ctx, resolveTrashedTemplateID(store, args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No trashed template with that id."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconUndo+" Restored"))
			return nil
		},
	}
}

func newTemplateTrashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trash",
		Short: "List soft-deleted templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			templates := store.DeletedTemplates()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrash, "Trash"))
			if len(templates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Empty."))
				return nil
			}
			for _, t := range templates {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s %s\n",
					ui.CategoryIcon(t.Category),
					ui.Muted.Render(t.Name),
					ui.Stars(t.Stars),
					ui.Dim.Render(shortID(t.ID)))
			}
			return nil
		},
	}
}
