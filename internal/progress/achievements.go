package progress

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// achievementCatalog returns the current achievement definitions, all locked.
// Imports and migrations take definitions from here and only overlay the
// unlocked flags, so badges added in newer releases show up locked instead of
// going missing.
func achievementCatalog() []Achievement {
	return []Achievement{
		{ID: "first-star", Name: "First Shine", Description: "Earn your very first star", Icon: "🌟"},
		{ID: "star-collector-50", Name: "Star Novice", Description: "Collect 50 stars in total", Icon: "✨"},
		{ID: "star-collector-100", Name: "Star Collector", Description: "Collect 100 stars in total", Icon: "💫"},
		{ID: "star-collector-200", Name: "Star Hunter", Description: "Collect 200 stars in total", Icon: "🌠"},
		{ID: "star-collector-300", Name: "Star Master", Description: "Collect 300 stars in total", Icon: "⭐"},
		{ID: "star-collector-500", Name: "Star Curator", Description: "Collect 500 stars in total", Icon: "🌟"},
		{ID: "star-collector-1000", Name: "Star Overlord", Description: "Collect 1000 stars in total", Icon: "👹"},
		{ID: "star-collector-2000", Name: "Cosmic Star Overlord", Description: "Collect 2000 stars in total", Icon: "🌌"},
		{ID: "perfect-day", Name: "Perfect Day", Description: "Complete every task in a single day", Icon: "🎯"},
		{ID: "week-warrior", Name: "Week Warrior", Description: "A 7-day streak (Sundays off)", Icon: "🏆"},
		{ID: "week-warrior-2", Name: "Fortnight Fighter", Description: "A 14-day streak (Sundays off)", Icon: "🥇"},
		{ID: "month-master", Name: "Month Master", Description: "A 30-day streak (Sundays off)", Icon: "👑"},
		{ID: "early-bird", Name: "Early Bird", Description: "Finish tasks before 8am for 7 days", Icon: "🐦"},
		{ID: "all-rounder", Name: "All-Rounder", Description: "Complete a task in every category in one day", Icon: "🎨"},
		{ID: "super-day", Name: "Super Day", Description: "Earn 20 stars in a single day", Icon: "🚀"},
	}
}

var starMilestones = []struct {
	Stars int
	ID    string
}{
	{50, "star-collector-50"},
	{100, "star-collector-100"},
	{200, "star-collector-200"},
	{300, "star-collector-300"},
	{500, "star-collector-500"},
	{1000, "star-collector-1000"},
	{2000, "star-collector-2000"},
}

var streakMilestones = []struct {
	Days int
	ID   string
}{
	{7, "week-warrior"},
	{14, "week-warrior-2"},
	{30, "month-master"},
}

// unlock flips a single achievement to unlocked. It is the only place an
// unlock transition happens; already-unlocked achievements are left alone,
// which is what makes every rule idempotent and the whole set monotonic.
func unlock(achievements []Achievement, id string, now time.Time) *Achievement {
	for i := range achievements {
		if achievements[i].ID != id {
			continue
		}
		if achievements[i].Unlocked {
			return nil
		}
		achievements[i].Unlocked = true
		ts := now
		achievements[i].UnlockedAt = &ts
		return &achievements[i]
	}
	return nil
}

// evaluateStarLadder applies the cumulative rules only: first-star and the
// seven star milestones. Used on its own by the manual star adjustment.
func evaluateStarLadder(achievements []Achievement, totalStars int, now time.Time) []Achievement {
	var unlocked []Achievement
	if totalStars >= 1 {
		if a := unlock(achievements, "first-star", now); a != nil {
			unlocked = append(unlocked, *a)
		}
	}
	for _, m := range starMilestones {
		if totalStars >= m.Stars {
			if a := unlock(achievements, m.ID, now); a != nil {
				unlocked = append(unlocked, *a)
			}
		}
	}
	return unlocked
}

// evaluateAchievements applies every rule except the streak ladder, in the
// unlock direction only, and returns the achievements that transitioned.
func evaluateAchievements(achievements []Achievement, totalStars int, todayTasks []Task, now time.Time) []Achievement {
	unlocked := evaluateStarLadder(achievements, totalStars, now)

	completed := countCompleted(todayTasks)
	if len(todayTasks) > 0 && completed == len(todayTasks) {
		if a := unlock(achievements, "perfect-day", now); a != nil {
			unlocked = append(unlocked, *a)
		}
	}

	if sumCompletedStars(todayTasks) >= 20 {
		if a := unlock(achievements, "super-day", now); a != nil {
			unlocked = append(unlocked, *a)
		}
	}

	seen := map[Category]bool{}
	for i := range todayTasks {
		if todayTasks[i].Completed {
			seen[todayTasks[i].Category] = true
		}
	}
	if len(seen) == len(AllCategories) {
		if a := unlock(achievements, "all-rounder", now); a != nil {
			unlocked = append(unlocked, *a)
		}
	}

	return unlocked
}

// evaluateStreakAchievements applies the streak ladder against a streak value
// already computed by ComputeStreak.
func evaluateStreakAchievements(achievements []Achievement, streak int, now time.Time) []Achievement {
	var unlocked []Achievement
	for _, m := range streakMilestones {
		if streak >= m.Days {
			if a := unlock(achievements, m.ID, now); a != nil {
				unlocked = append(unlocked, *a)
			}
		}
	}
	return unlocked
}

// Achievements returns a copy of the current achievement set.
func (s *Store) Achievements() []Achievement {
	out := make([]Achievement, len(s.state.Achievements))
	copy(out, s.state.Achievements)
	return out
}

// UnlockAchievement unlocks a badge by id regardless of its rule. This is the
// manual escape hatch (and the only way to earn early-bird). Unknown ids and
// already-unlocked badges are silent no-ops.
func (s *Store) UnlockAchievement(ctx context.Context, id string) (*Achievement, error) {
	a := unlock(s.state.Achievements, id, s.now())
	if a == nil {
		return nil, nil
	}
	s.log.Debug("achievement unlocked manually", zap.String("id", id))
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	s.notify([]Achievement{*a})
	return a, nil
}
