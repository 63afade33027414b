package progress

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskResult reports the outcome of a star-affecting task mutation.
type TaskResult struct {
	Task       Task
	StarsDelta int
	TotalStars int
	Streak     int
	Unlocked   []Achievement
}

// AddTask creates a custom task for today and upserts the matching template.
func (s *Store) AddTask(ctx context.Context, name string, category Category, stars int) (*Task, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, validationf("%s", err)
	}
	if !category.IsValid() {
		return nil, validationf("invalid category: %q", category)
	}
	if stars <= 0 {
		return nil, validationf("stars must be a positive integer, got %d", stars)
	}

	s.upsertTemplate(name, category, stars)
	task := s.appendTask(name, category, stars)
	s.log.Debug("task added",
		zap.String("id", task.ID),
		zap.String("name", task.Name),
		zap.String("category", string(task.Category)),
		zap.Int("stars", task.Stars))

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &task, nil
}

// appendTask places a new task in today's record without touching templates.
// Both custom creation and template instantiation funnel through here so a
// template's usage counter is bumped exactly once per creation path.
func (s *Store) appendTask(name string, category Category, stars int) Task {
	task := Task{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Stars:    stars,
		Date:     s.today(),
	}
	rec := s.ensureToday()
	rec.Tasks = append(rec.Tasks, task)
	return task
}

// CompleteTask marks a task in today's record as completed and credits its
// stars. Unknown ids, ids from other days, and already-completed tasks are
// silent no-ops: the state is left byte-for-byte unchanged and nothing is
// persisted.
func (s *Store) CompleteTask(ctx context.Context, id string) (*TaskResult, error) {
	rec := s.recordFor(s.today())
	if rec == nil {
		return nil, nil
	}
	var task *Task
	for i := range rec.Tasks {
		if rec.Tasks[i].ID == id && !rec.Tasks[i].Completed {
			task = &rec.Tasks[i]
			break
		}
	}
	if task == nil {
		s.log.Debug("complete: no matching task today", zap.String("id", id))
		return nil, nil
	}

	task.Completed = true
	rec.TotalStars = sumCompletedStars(rec.Tasks)
	s.state.TotalStars += task.Stars

	unlocked := evaluateAchievements(s.state.Achievements, s.state.TotalStars, rec.Tasks, s.now())
	s.state.CurrentStreak = ComputeStreak(s.state.DailyRecords, s.today())
	unlocked = append(unlocked, evaluateStreakAchievements(s.state.Achievements, s.state.CurrentStreak, s.now())...)

	s.log.Debug("task completed",
		zap.String("id", task.ID),
		zap.String("name", task.Name),
		zap.Int("stars", task.Stars),
		zap.Int("totalStars", s.state.TotalStars),
		zap.Int("streak", s.state.CurrentStreak))

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	s.notify(unlocked)
	return &TaskResult{
		Task:       *task,
		StarsDelta: task.Stars,
		TotalStars: s.state.TotalStars,
		Streak:     s.state.CurrentStreak,
		Unlocked:   unlocked,
	}, nil
}

// UncompleteTask reverses a completion in today's record. The cumulative
// total is clamped at zero; achievements already unlocked stay unlocked.
func (s *Store) UncompleteTask(ctx context.Context, id string) (*TaskResult, error) {
	rec := s.recordFor(s.today())
	if rec == nil {
		return nil, nil
	}
	var task *Task
	for i := range rec.Tasks {
		if rec.Tasks[i].ID == id && rec.Tasks[i].Completed {
			task = &rec.Tasks[i]
			break
		}
	}
	if task == nil {
		s.log.Debug("uncomplete: no matching task today", zap.String("id", id))
		return nil, nil
	}

	task.Completed = false
	rec.TotalStars = sumCompletedStars(rec.Tasks)
	s.state.TotalStars = clampStars(s.state.TotalStars - task.Stars)
	s.state.CurrentStreak = ComputeStreak(s.state.DailyRecords, s.today())

	s.log.Debug("task uncompleted",
		zap.String("id", task.ID),
		zap.Int("stars", task.Stars),
		zap.Int("totalStars", s.state.TotalStars))

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &TaskResult{
		Task:       *task,
		StarsDelta: -task.Stars,
		TotalStars: s.state.TotalStars,
		Streak:     s.state.CurrentStreak,
	}, nil
}

// DeleteTask removes a task from today's record. A completed task also gives
// its stars back (clamped at zero). There is no undo.
func (s *Store) DeleteTask(ctx context.Context, id string) (*TaskResult, error) {
	rec := s.recordFor(s.today())
	if rec == nil {
		return nil, nil
	}
	idx := -1
	for i := range rec.Tasks {
		if rec.Tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.log.Debug("delete: no matching task today", zap.String("id", id))
		return nil, nil
	}

	task := rec.Tasks[idx]
	rec.Tasks = append(rec.Tasks[:idx], rec.Tasks[idx+1:]...)
	rec.TotalStars = sumCompletedStars(rec.Tasks)

	delta := 0
	if task.Completed {
		delta = -task.Stars
		s.state.TotalStars = clampStars(s.state.TotalStars - task.Stars)
	}
	s.state.CurrentStreak = ComputeStreak(s.state.DailyRecords, s.today())

	s.log.Debug("task deleted",
		zap.String("id", task.ID),
		zap.Bool("wasCompleted", task.Completed),
		zap.Int("totalStars", s.state.TotalStars))

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &TaskResult{
		Task:       task,
		StarsDelta: delta,
		TotalStars: s.state.TotalStars,
		Streak:     s.state.CurrentStreak,
	}, nil
}

// ClearToday removes every task from today's record and gives back the stars
// they had earned. Returns the number of stars deducted.
func (s *Store) ClearToday(ctx context.Context) (int, error) {
	rec := s.recordFor(s.today())
	if rec == nil || len(rec.Tasks) == 0 {
		return 0, nil
	}

	deducted := rec.TotalStars
	rec.Tasks = []Task{}
	rec.TotalStars = 0
	s.state.TotalStars = clampStars(s.state.TotalStars - deducted)
	s.state.CurrentStreak = ComputeStreak(s.state.DailyRecords, s.today())

	s.log.Debug("today cleared", zap.Int("starsDeducted", deducted))

	if err := s.save(ctx); err != nil {
		return 0, err
	}
	return deducted, nil
}

func clampStars(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
