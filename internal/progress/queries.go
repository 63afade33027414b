package progress

import (
	"fmt"
	"strings"
)

// TotalStars returns the cumulative star total.
func (s *Store) TotalStars() int {
	return s.state.TotalStars
}

// Streak returns the current streak length.
func (s *Store) Streak() int {
	return s.state.CurrentStreak
}

// TodayTasks returns a copy of today's task list, in creation order.
func (s *Store) TodayTasks() []Task {
	rec := s.recordFor(s.today())
	if rec == nil {
		return nil
	}
	out := make([]Task, len(rec.Tasks))
	copy(out, rec.Tasks)
	return out
}

// TodayProgress returns today's completion percentage (0–100).
func (s *Store) TodayProgress() float64 {
	tasks := s.TodayTasks()
	if len(tasks) == 0 {
		return 0
	}
	return float64(countCompleted(tasks)) / float64(len(tasks)) * 100
}

// TodayStars returns the stars earned today.
func (s *Store) TodayStars() int {
	rec := s.recordFor(s.today())
	if rec == nil {
		return 0
	}
	return rec.TotalStars
}

type DayStat struct {
	Date      string
	Stars     int
	Tasks     int
	Completed int
}

type WeeklyStats struct {
	TotalStars     int
	CompletionRate float64
	Days           []DayStat
}

// WeeklyStats aggregates the last seven days up to and including today.
func (s *Store) WeeklyStats() WeeklyStats {
	todayDay, err := parseDay(s.today())
	if err != nil {
		return WeeklyStats{}
	}
	weekAgo := todayDay.AddDate(0, 0, -7)

	var stats WeeklyStats
	totalTasks := 0
	completedTasks := 0
	for i := range s.state.DailyRecords {
		rec := &s.state.DailyRecords[i]
		d, err := parseDay(rec.Date)
		if err != nil {
			continue
		}
		if d.Before(weekAgo) || d.After(todayDay) {
			continue
		}
		stats.TotalStars += rec.TotalStars
		totalTasks += len(rec.Tasks)
		completedTasks += countCompleted(rec.Tasks)
		stats.Days = append(stats.Days, DayStat{
			Date:      rec.Date,
			Stars:     rec.TotalStars,
			Tasks:     len(rec.Tasks),
			Completed: countCompleted(rec.Tasks),
		})
	}
	if totalTasks > 0 {
		stats.CompletionRate = float64(completedTasks) / float64(totalTasks) * 100
	}
	return stats
}

// DailyReport renders today's progress as a short text report.
func (s *Store) DailyReport() string {
	rec := s.recordFor(s.today())
	if rec == nil || len(rec.Tasks) == 0 {
		return "No tasks recorded today yet!"
	}

	completed := countCompleted(rec.Tasks)
	total := len(rec.Tasks)
	rate := float64(completed) / float64(total) * 100

	byCategory := map[Category]int{}
	for i := range rec.Tasks {
		if rec.Tasks[i].Completed {
			byCategory[rec.Tasks[i].Category]++
		}
	}

	var b strings.Builder
	b.WriteString("📊 Daily Report\n\n")
	fmt.Fprintf(&b, "Completion: %.0f%% (%d/%d)\n", rate, completed, total)
	fmt.Fprintf(&b, "Stars earned: %d ⭐\n\n", rec.TotalStars)
	b.WriteString("By category:\n")
	fmt.Fprintf(&b, "📚 Study: %d\n", byCategory[CategoryStudy])
	fmt.Fprintf(&b, "🏃 Exercise: %d\n", byCategory[CategoryExercise])
	fmt.Fprintf(&b, "😊 Behavior: %d\n", byCategory[CategoryBehavior])
	fmt.Fprintf(&b, "🎨 Creativity: %d\n\n", byCategory[CategoryCreativity])

	switch {
	case rate >= 100:
		b.WriteString("🎉 Amazing! Every task done today!")
	case rate >= 80:
		b.WriteString("💪 Great work! Keep it up!")
	case rate >= 60:
		b.WriteString("😊 Not bad! Push a little more tomorrow!")
	default:
		b.WriteString("💡 Keep going! Tomorrow will be better!")
	}
	return b.String()
}
