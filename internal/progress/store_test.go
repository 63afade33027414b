package progress

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"starbank/internal/storage"
)

// fixedNow is a Tuesday; the preceding Sunday is 2026-08-23.
var fixedNow = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	s, err := Open(ctx, newTestDB(t), WithClock(func() time.Time { return fixedNow }))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

// stateSnapshot serializes the whole state so tests can assert that no-op
// operations leave it byte-for-byte unchanged.
func stateSnapshot(t *testing.T, s *Store) string {
	t.Helper()
	out, err := json.Marshal(s.state)
	if err != nil {
		t.Fatalf("marshal state: %v", err)
	}
	return string(out)
}

func unlockedIDs(achievements []Achievement) map[string]bool {
	ids := map[string]bool{}
	for _, a := range achievements {
		if a.Unlocked {
			ids[a.ID] = true
		}
	}
	return ids
}

func TestFreshStateInitialized(t *testing.T) {
	s := newTestStore(t)

	if got := s.TotalStars(); got != 0 {
		t.Fatalf("TotalStars=%d, want 0", got)
	}
	if got := s.Streak(); got != 0 {
		t.Fatalf("Streak=%d, want 0", got)
	}
	achievements := s.Achievements()
	if len(achievements) != len(achievementCatalog()) {
		t.Fatalf("achievements=%d, want %d", len(achievements), len(achievementCatalog()))
	}
	for _, a := range achievements {
		if a.Unlocked {
			t.Fatalf("achievement %q unlocked on fresh state", a.ID)
		}
	}
	if tasks := s.TodayTasks(); len(tasks) != 0 {
		t.Fatalf("TodayTasks=%d, want 0", len(tasks))
	}
}

func TestReopenPersistsState(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	clock := WithClock(func() time.Time { return fixedNow })

	s1, err := Open(ctx, db, clock)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	task, err := s1.AddTask(ctx, "Read a chapter", CategoryStudy, 3)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := s1.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	s2, err := Open(ctx, db, clock)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if got := s2.TotalStars(); got != 3 {
		t.Fatalf("TotalStars after reopen=%d, want 3", got)
	}
	if got := s2.Streak(); got != 1 {
		t.Fatalf("Streak after reopen=%d, want 1", got)
	}
	tasks := s2.TodayTasks()
	if len(tasks) != 1 || tasks[0].ID != task.ID || !tasks[0].Completed {
		t.Fatalf("unexpected tasks after reopen: %+v", tasks)
	}
	if !unlockedIDs(s2.Achievements())["first-star"] {
		t.Fatalf("first-star not unlocked after reopen")
	}
}

func TestMigrationRebuildsAchievementCatalog(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	unlockedAt := fixedNow.AddDate(0, -1, 0)
	old := AppState{
		TotalStars: 12,
		DailyRecords: []DailyRecord{
			{Date: "2026-07-25", Tasks: []Task{{ID: "t1", Name: "Old task", Category: CategoryStudy, Completed: true, Stars: 12, Date: "2026-07-25"}}, TotalStars: 12},
		},
		Achievements: []Achievement{
			{ID: "first-star", Name: "First Shine", Unlocked: true, UnlockedAt: &unlockedAt},
			{ID: "retired-badge", Name: "Gone", Unlocked: true},
		},
	}
	payload, err := json.Marshal(persistedDocument{Version: 1, State: old})
	if err != nil {
		t.Fatalf("marshal old doc: %v", err)
	}
	if err := storage.NewStateRepo(db).Save(ctx, 1, payload); err != nil {
		t.Fatalf("seed old doc: %v", err)
	}

	s, err := Open(ctx, db, WithClock(func() time.Time { return fixedNow }))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	achievements := s.Achievements()
	if len(achievements) != len(achievementCatalog()) {
		t.Fatalf("achievements=%d, want %d", len(achievements), len(achievementCatalog()))
	}
	ids := unlockedIDs(achievements)
	if !ids["first-star"] {
		t.Fatalf("first-star lost in migration")
	}
	if len(ids) != 1 {
		t.Fatalf("unlocked after migration=%v, want only first-star", ids)
	}
	for _, a := range achievements {
		if a.ID == "retired-badge" {
			t.Fatalf("retired badge survived migration")
		}
		if a.ID == "first-star" && (a.UnlockedAt == nil || !a.UnlockedAt.Equal(unlockedAt)) {
			t.Fatalf("first-star timestamp not preserved: %v", a.UnlockedAt)
		}
	}
	if got := s.TotalStars(); got != 12 {
		t.Fatalf("TotalStars after migration=%d, want 12", got)
	}
	if len(s.state.DailyRecords) != 1 {
		t.Fatalf("daily records lost in migration")
	}
}

func TestUnlockListenerFiresOncePerTransition(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var seen []string
	s.SetUnlockListener(func(a Achievement) { seen = append(seen, a.ID) })

	task, err := s.AddTask(ctx, "Practice piano", CategoryCreativity, 1)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := s.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	got := map[string]bool{}
	for _, id := range seen {
		got[id] = true
	}
	if !got["first-star"] || !got["perfect-day"] {
		t.Fatalf("listener saw %v, want first-star and perfect-day", seen)
	}

	// A re-check of an already-unlocked badge must not notify again.
	seen = nil
	if _, err := s.UncompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("UncompleteTask: %v", err)
	}
	if _, err := s.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if len(seen) != 0 {
		t.Fatalf("listener re-notified for %v", seen)
	}
}
