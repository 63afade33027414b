package progress

import (
	"sort"
	"time"
)

// ComputeStreak returns the run of consecutive active days ending today.
// An active day has at least one completed task. If today is not active the
// streak is zero, no partial credit. Walking backward, two active days count
// as consecutive when exactly one qualifying calendar day separates them,
// where Sundays neither break the chain nor count toward the gap.
func ComputeStreak(records []DailyRecord, today string) int {
	var active []string
	hasToday := false
	for i := range records {
		if countCompleted(records[i].Tasks) == 0 {
			continue
		}
		active = append(active, records[i].Date)
		if records[i].Date == today {
			hasToday = true
		}
	}
	if !hasToday {
		return 0
	}

	// ISO day keys sort lexicographically; newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(active)))

	streak := 1
	for i := 1; i < len(active); i++ {
		newer, err := parseDay(active[i-1])
		if err != nil {
			break
		}
		older, err := parseDay(active[i])
		if err != nil {
			break
		}
		if qualifyingGap(older, newer) != 1 {
			break
		}
		streak++
	}
	return streak
}

// qualifyingGap counts the non-Sunday calendar days in (older, newer].
func qualifyingGap(older, newer time.Time) int {
	gap := 0
	for d := older.AddDate(0, 0, 1); !d.After(newer); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			gap++
		}
	}
	return gap
}
