package progress

import "testing"

func activeDay(date string) DailyRecord {
	return DailyRecord{
		Date:       date,
		Tasks:      []Task{{ID: "t-" + date, Name: "task", Category: CategoryStudy, Completed: true, Stars: 1, Date: date}},
		TotalStars: 1,
	}
}

func idleDay(date string) DailyRecord {
	return DailyRecord{
		Date:  date,
		Tasks: []Task{{ID: "t-" + date, Name: "task", Category: CategoryStudy, Stars: 1, Date: date}},
	}
}

func TestStreakZeroWhenTodayInactive(t *testing.T) {
	records := []DailyRecord{activeDay("2026-08-23"), activeDay("2026-08-24")}
	if got := ComputeStreak(records, "2026-08-25"); got != 0 {
		t.Fatalf("streak=%d, want 0 when today has no record", got)
	}

	records = append(records, idleDay("2026-08-25"))
	if got := ComputeStreak(records, "2026-08-25"); got != 0 {
		t.Fatalf("streak=%d, want 0 when today has no completed task", got)
	}
}

func TestStreakSingleDay(t *testing.T) {
	records := []DailyRecord{activeDay("2026-08-25")}
	if got := ComputeStreak(records, "2026-08-25"); got != 1 {
		t.Fatalf("streak=%d, want 1", got)
	}
}

func TestStreakSkipsSunday(t *testing.T) {
	// Friday, Saturday, (Sunday off), Monday, Tuesday.
	records := []DailyRecord{
		activeDay("2026-08-21"),
		activeDay("2026-08-22"),
		activeDay("2026-08-24"),
		activeDay("2026-08-25"),
	}
	if got := ComputeStreak(records, "2026-08-25"); got != 4 {
		t.Fatalf("streak=%d, want 4 across a Sunday gap", got)
	}
}

func TestStreakCountsActiveSunday(t *testing.T) {
	records := []DailyRecord{
		activeDay("2026-08-23"),
		activeDay("2026-08-24"),
		activeDay("2026-08-25"),
	}
	if got := ComputeStreak(records, "2026-08-25"); got != 3 {
		t.Fatalf("streak=%d, want 3 including an active Sunday", got)
	}
}

func TestStreakBreaksOnMissedWeekday(t *testing.T) {
	// Saturday the 22nd was skipped, so the chain stops at Monday.
	records := []DailyRecord{
		activeDay("2026-08-21"),
		activeDay("2026-08-24"),
		activeDay("2026-08-25"),
	}
	if got := ComputeStreak(records, "2026-08-25"); got != 2 {
		t.Fatalf("streak=%d, want 2 after a missed Saturday", got)
	}
}
