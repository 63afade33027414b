package progress

import (
	"context"
	"fmt"
	"testing"
)

func resultIDs(unlocked []Achievement) map[string]bool {
	ids := map[string]bool{}
	for _, a := range unlocked {
		ids[a.ID] = true
	}
	return ids
}

func TestFirstCompletionUnlocksFirstStar(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	task, err := s.AddTask(ctx, "Read a chapter", CategoryStudy, 1)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	res, err := s.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	ids := resultIDs(res.Unlocked)
	if !ids["first-star"] {
		t.Fatalf("first-star not in %v", res.Unlocked)
	}
	// The only task of the day is done, so the day is perfect too.
	if !ids["perfect-day"] {
		t.Fatalf("perfect-day not in %v", res.Unlocked)
	}
}

func TestStarMilestoneUnlocksExactlyOnCrossing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t1, err := s.AddTask(ctx, "Warm up", CategoryStudy, 1)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := s.CompleteTask(ctx, t1.ID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	s.state.TotalStars = 49

	t2, err := s.AddTask(ctx, "One more", CategoryStudy, 1)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	res, err := s.CompleteTask(ctx, t2.ID)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	if res.TotalStars != 50 {
		t.Fatalf("TotalStars=%d, want 50", res.TotalStars)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].ID != "star-collector-50" {
		t.Fatalf("unlocked=%v, want exactly star-collector-50", res.Unlocked)
	}
	if unlockedIDs(s.Achievements())["star-collector-100"] {
		t.Fatalf("star-collector-100 unlocked at 50 stars")
	}
}

func TestAchievementsNeverRelock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	task, err := s.AddTask(ctx, "Read a chapter", CategoryStudy, 1)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := s.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if _, err := s.UncompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("UncompleteTask: %v", err)
	}

	if got := s.TotalStars(); got != 0 {
		t.Fatalf("TotalStars=%d, want 0", got)
	}
	ids := unlockedIDs(s.Achievements())
	if !ids["first-star"] || !ids["perfect-day"] {
		t.Fatalf("badges re-locked after uncomplete: %v", ids)
	}
}

func TestAllRounderAndSuperDay(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var last *TaskResult
	for i, c := range AllCategories {
		task, err := s.AddTask(ctx, fmt.Sprintf("Task %d", i), c, 5)
		if err != nil {
			t.Fatalf("AddTask %s: %v", c, err)
		}
		last, err = s.CompleteTask(ctx, task.ID)
		if err != nil {
			t.Fatalf("CompleteTask %s: %v", c, err)
		}
	}

	// The fourth completion covers every category and lifts the day to 20
	// stars at the same time.
	ids := resultIDs(last.Unlocked)
	if !ids["all-rounder"] {
		t.Fatalf("all-rounder not in %v", last.Unlocked)
	}
	if !ids["super-day"] {
		t.Fatalf("super-day not in %v", last.Unlocked)
	}
}

func TestStreakMilestoneUnlock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Six prior active days; the Sunday (the 23rd) stays empty.
	for _, d := range []string{"2026-08-18", "2026-08-19", "2026-08-20", "2026-08-21", "2026-08-22", "2026-08-24"} {
		s.state.DailyRecords = append(s.state.DailyRecords, activeDay(d))
	}

	task, err := s.AddTask(ctx, "Keep it going", CategoryBehavior, 1)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	res, err := s.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	if res.Streak != 7 {
		t.Fatalf("Streak=%d, want 7", res.Streak)
	}
	if !resultIDs(res.Unlocked)["week-warrior"] {
		t.Fatalf("week-warrior not in %v", res.Unlocked)
	}
	if unlockedIDs(s.Achievements())["week-warrior-2"] {
		t.Fatalf("week-warrior-2 unlocked at a 7-day streak")
	}
}

func TestManualUnlock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.UnlockAchievement(ctx, "early-bird")
	if err != nil {
		t.Fatalf("UnlockAchievement: %v", err)
	}
	if a == nil || a.ID != "early-bird" || !a.Unlocked || a.UnlockedAt == nil {
		t.Fatalf("unexpected unlock result: %+v", a)
	}

	// Repeats and unknown ids are silent no-ops.
	if a, err := s.UnlockAchievement(ctx, "early-bird"); err != nil || a != nil {
		t.Fatalf("repeat unlock: a=%v err=%v", a, err)
	}
	if a, err := s.UnlockAchievement(ctx, "no-such-badge"); err != nil || a != nil {
		t.Fatalf("unknown unlock: a=%v err=%v", a, err)
	}
}
