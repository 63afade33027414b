package progress

import (
	"context"
	"testing"
	"time"
)

func TestAddTaskUpsertsTemplate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AddTask(ctx, "Read a chapter", CategoryStudy, 2); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := s.AddTask(ctx, "Read a chapter", CategoryStudy, 2); err != nil {
		t.Fatalf("AddTask repeat: %v", err)
	}

	active := s.ActiveTemplates()
	if len(active) != 1 {
		t.Fatalf("templates=%d, want 1", len(active))
	}
	if active[0].UsageCount != 2 {
		t.Fatalf("UsageCount=%d, want 2", active[0].UsageCount)
	}

	// A different star value is a different template.
	if _, err := s.AddTask(ctx, "Read a chapter", CategoryStudy, 3); err != nil {
		t.Fatalf("AddTask variant: %v", err)
	}
	if got := len(s.ActiveTemplates()); got != 2 {
		t.Fatalf("templates=%d, want 2 after star change", got)
	}
}

func TestAddTaskFromTemplate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AddTask(ctx, "Go swimming", CategoryExercise, 3); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	tpl := s.ActiveTemplates()[0]

	task, err := s.AddTaskFromTemplate(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("AddTaskFromTemplate: %v", err)
	}
	if task == nil {
		t.Fatalf("no task instantiated")
	}
	if task.Name != tpl.Name || task.Category != tpl.Category || task.Stars != tpl.Stars {
		t.Fatalf("task %+v does not match template %+v", task, tpl)
	}
	if task.Completed {
		t.Fatalf("instantiated task starts completed")
	}
	if got := len(s.TodayTasks()); got != 2 {
		t.Fatalf("today tasks=%d, want 2", got)
	}
	if got := s.ActiveTemplates()[0].UsageCount; got != 2 {
		t.Fatalf("UsageCount=%d, want 2 after instantiation", got)
	}
}

func TestTemplateTrashLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AddTask(ctx, "Practice piano", CategoryCreativity, 2); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	tpl := s.ActiveTemplates()[0]

	ok, err := s.DeleteTemplate(ctx, tpl.ID)
	if err != nil || !ok {
		t.Fatalf("DeleteTemplate: ok=%v err=%v", ok, err)
	}
	if len(s.ActiveTemplates()) != 0 {
		t.Fatalf("deleted template still active")
	}
	if got := len(s.DeletedTemplates()); got != 1 {
		t.Fatalf("trash=%d, want 1", got)
	}

	// A trashed template cannot be instantiated or deleted again.
	if task, err := s.AddTaskFromTemplate(ctx, tpl.ID); err != nil || task != nil {
		t.Fatalf("instantiate trashed: task=%v err=%v", task, err)
	}
	if ok, err := s.DeleteTemplate(ctx, tpl.ID); err != nil || ok {
		t.Fatalf("double delete: ok=%v err=%v", ok, err)
	}

	ok, err = s.RestoreTemplate(ctx, tpl.ID)
	if err != nil || !ok {
		t.Fatalf("RestoreTemplate: ok=%v err=%v", ok, err)
	}
	if len(s.ActiveTemplates()) != 1 {
		t.Fatalf("restored template not active")
	}
	if ok, err := s.RestoreTemplate(ctx, tpl.ID); err != nil || ok {
		t.Fatalf("double restore: ok=%v err=%v", ok, err)
	}
}

func TestUpsertIgnoresTrashedTemplates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AddTask(ctx, "Tidy the room", CategoryBehavior, 1); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	tpl := s.ActiveTemplates()[0]
	if _, err := s.DeleteTemplate(ctx, tpl.ID); err != nil {
		t.Fatalf("DeleteTemplate: %v", err)
	}

	// The same triple now creates a fresh template instead of reviving the
	// trashed one.
	if _, err := s.AddTask(ctx, "Tidy the room", CategoryBehavior, 1); err != nil {
		t.Fatalf("AddTask after trash: %v", err)
	}
	active := s.ActiveTemplates()
	if len(active) != 1 || active[0].ID == tpl.ID || active[0].UsageCount != 1 {
		t.Fatalf("unexpected active templates: %+v", active)
	}
	if got := len(s.DeletedTemplates()); got != 1 {
		t.Fatalf("trash=%d, want 1", got)
	}
}

func TestActiveTemplateOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	clock := fixedNow
	s.now = func() time.Time { return clock }

	if _, err := s.AddTask(ctx, "Read", CategoryStudy, 2); err != nil {
		t.Fatalf("AddTask Read: %v", err)
	}
	clock = clock.Add(time.Minute)
	if _, err := s.AddTask(ctx, "Math drills", CategoryStudy, 2); err != nil {
		t.Fatalf("AddTask Math: %v", err)
	}
	if _, err := s.AddTask(ctx, "Math drills", CategoryStudy, 2); err != nil {
		t.Fatalf("AddTask Math repeat: %v", err)
	}
	clock = clock.Add(time.Minute)
	if _, err := s.AddTask(ctx, "Draw", CategoryCreativity, 2); err != nil {
		t.Fatalf("AddTask Draw: %v", err)
	}

	// Most used first, then most recently created among equals.
	var names []string
	for _, tpl := range s.ActiveTemplates() {
		names = append(names, tpl.Name)
	}
	want := []string{"Math drills", "Draw", "Read"}
	for i := range want {
		if i >= len(names) || names[i] != want[i] {
			t.Fatalf("order=%v, want %v", names, want)
		}
	}
}
