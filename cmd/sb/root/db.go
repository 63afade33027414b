package root

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"starbank/internal/logging"
	"starbank/internal/progress"
	"starbank/internal/storage"
	"starbank/internal/ui"
)

var dbPath string

func openStore(ctx context.Context, out io.Writer) (*progress.Store, func(), error) {
	path := dbPath
	if path == "" {
		var err error
		path, err = storage.ResolveDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	logger := logging.New(logging.DefaultLogPath(), logging.Enabled())
	store, err := progress.Open(ctx, db, progress.WithLogger(logger))
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	store.SetUnlockListener(func(a progress.Achievement) {
		fmt.Fprintf(out, "%s %s\n",
			ui.Gold.Render(ui.IconTrophy+" Achievement unlocked:"),
			fmt.Sprintf("%s %s %s", a.Icon, a.Name, ui.Muted.Render(a.Description)))
	})

	cleanup := func() {
		_ = logger.Sync()
		_ = db.Close()
	}
	return store, cleanup, nil
}

// resolveTaskID accepts either a task id or a 1-based index into today's
// list, which is what `sb today` prints.
func resolveTaskID(store *progress.Store, arg string) string {
	if n, err := strconv.Atoi(arg); err == nil {
		tasks := store.TodayTasks()
		if n >= 1 && n <= len(tasks) {
			return tasks[n-1].ID
		}
	}
	return arg
}

// resolveTemplateID accepts a full id or a unique id prefix, which is what
// the template listings print.
func resolveTemplateID(store *progress.Store, arg string) string {
	return matchTemplateID(store.ActiveTemplates(), arg)
}

func resolveTrashedTemplateID(store *progress.Store, arg string) string {
	return matchTemplateID(store.DeletedTemplates(), arg)
}

func matchTemplateID(templates []progress.TaskTemplate, arg string) string {
	match := arg
	found := 0
	for _, t := range templates {
		if strings.HasPrefix(t.ID, arg) {
			match = t.ID
			found++
		}
	}
	if found == 1 {
		return match
	}
	return arg
}
