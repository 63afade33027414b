package progress

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type MonthStat struct {
	Month     string `json:"month"`
	Stars     int    `json:"stars"`
	Tasks     int    `json:"tasks"`
	Completed int    `json:"completed"`
}

type ExportStats struct {
	TotalDays      int         `json:"totalDays"`
	TotalTasks     int         `json:"totalTasks"`
	CompletedTasks int         `json:"completedTasks"`
	CompletionRate float64     `json:"completionRate"`
	AvgStarsPerDay float64     `json:"avgStarsPerDay"`
	Monthly        []MonthStat `json:"monthly"`
}

// ExportDocument is the JSON backup format: the whole state minus the admin
// password, plus a derived statistics block.
type ExportDocument struct {
	Version    int         `json:"version"`
	ExportedAt time.Time   `json:"exportedAt"`
	State      AppState    `json:"state"`
	Stats      ExportStats `json:"stats"`
}

func (s *Store) exportStats() ExportStats {
	stats := ExportStats{TotalDays: len(s.state.DailyRecords)}
	totalStars := 0
	months := map[string]*MonthStat{}
	for i := range s.state.DailyRecords {
		rec := &s.state.DailyRecords[i]
		stats.TotalTasks += len(rec.Tasks)
		stats.CompletedTasks += countCompleted(rec.Tasks)
		totalStars += rec.TotalStars

		month := rec.Date
		if len(month) >= 7 {
			month = month[:7]
		}
		m := months[month]
		if m == nil {
			m = &MonthStat{Month: month}
			months[month] = m
		}
		m.Stars += rec.TotalStars
		m.Tasks += len(rec.Tasks)
		m.Completed += countCompleted(rec.Tasks)
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}
	if stats.TotalDays > 0 {
		stats.AvgStarsPerDay = float64(totalStars) / float64(stats.TotalDays)
	}
	var keys []string
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		stats.Monthly = append(stats.Monthly, *months[k])
	}
	return stats
}

// ExportJSON serializes the whole state (minus the admin password) and a
// statistics block into a versioned, timestamped backup document.
func (s *Store) ExportJSON() ([]byte, error) {
	state := *s.state
	state.AdminPassword = ""
	records := make([]DailyRecord, len(s.state.DailyRecords))
	copy(records, s.state.DailyRecords)
	for i := range records {
		if records[i].Tasks == nil {
			records[i].Tasks = []Task{}
		}
	}
	state.DailyRecords = records
	doc := ExportDocument{
		Version:    StateVersion,
		ExportedAt: s.now(),
		State:      state,
		Stats:      s.exportStats(),
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return out, nil
}

// ExportCSV writes one row per task followed by summary blocks. This is a
// one-way reporting format, not re-importable.
func (s *Store) ExportCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"date", "task", "category", "completed", "stars", "day total"})
	for i := range s.state.DailyRecords {
		rec := &s.state.DailyRecords[i]
		for j := range rec.Tasks {
			t := &rec.Tasks[j]
			_ = w.Write([]string{
				t.Date,
				t.Name,
				string(t.Category),
				strconv.FormatBool(t.Completed),
				strconv.Itoa(t.Stars),
				strconv.Itoa(rec.TotalStars),
			})
		}
	}

	stats := s.exportStats()
	_ = w.Write(nil)
	_ = w.Write([]string{"summary"})
	_ = w.Write([]string{"total stars", strconv.Itoa(s.state.TotalStars)})
	_ = w.Write([]string{"current streak", strconv.Itoa(s.state.CurrentStreak)})
	_ = w.Write([]string{"total days", strconv.Itoa(stats.TotalDays)})
	_ = w.Write([]string{"total tasks", strconv.Itoa(stats.TotalTasks)})
	_ = w.Write([]string{"completed tasks", strconv.Itoa(stats.CompletedTasks)})
	_ = w.Write([]string{"completion rate", fmt.Sprintf("%.1f%%", stats.CompletionRate)})
	_ = w.Write([]string{"avg stars per day", fmt.Sprintf("%.1f", stats.AvgStarsPerDay)})

	_ = w.Write(nil)
	_ = w.Write([]string{"month", "stars", "tasks", "completed"})
	for _, m := range stats.Monthly {
		_ = w.Write([]string{m.Month, strconv.Itoa(m.Stars), strconv.Itoa(m.Tasks), strconv.Itoa(m.Completed)})
	}

	_ = w.Write(nil)
	_ = w.Write([]string{"achievement", "name", "unlocked", "unlocked at"})
	for _, a := range s.state.Achievements {
		unlockedAt := ""
		if a.UnlockedAt != nil {
			unlockedAt = a.UnlockedAt.Format(time.RFC3339)
		}
		_ = w.Write([]string{a.ID, a.Name, strconv.FormatBool(a.Unlocked), unlockedAt})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Pointer fields distinguish "absent" from zero values so the validation can
// reject documents with missing required fields. A type mismatch already
// fails at unmarshal time.
type importAchievement struct {
	ID         *string    `json:"id"`
	Name       *string    `json:"name"`
	Unlocked   *bool      `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedDate"`
}

type importRecord struct {
	Date       *string `json:"date"`
	Tasks      *[]Task `json:"tasks"`
	TotalStars *int    `json:"totalStars"`
}

type importState struct {
	TotalStars    *int                 `json:"totalStars"`
	CurrentStreak *int                 `json:"currentStreak"`
	DailyRecords  *[]importRecord      `json:"dailyRecords"`
	Achievements  *[]importAchievement `json:"achievements"`
	CustomTasks   []Task               `json:"customTasks"`
	TaskTemplates []TaskTemplate       `json:"taskTemplates"`
}

type importDocument struct {
	Version *int         `json:"version"`
	State   *importState `json:"state"`
}

// ImportJSON validates and applies a backup document. Validation failures
// reject the whole import and leave the prior state untouched. Achievement
// definitions always come from the running catalog; only unlock flags and
// timestamps are merged in from the import.
func (s *Store) ImportJSON(ctx context.Context, data []byte) error {
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return validationf("malformed import document: %v", err)
	}
	if doc.Version == nil {
		return validationf("import document is missing a version tag")
	}
	if doc.State == nil {
		return validationf("import document is missing the state block")
	}
	st := doc.State
	if st.TotalStars == nil || *st.TotalStars < 0 {
		return validationf("import state needs a non-negative totalStars")
	}
	if st.CurrentStreak == nil || *st.CurrentStreak < 0 {
		return validationf("import state needs a non-negative currentStreak")
	}
	if st.DailyRecords == nil {
		return validationf("import state is missing dailyRecords")
	}
	if st.Achievements == nil {
		return validationf("import state is missing achievements")
	}

	records := make([]DailyRecord, 0, len(*st.DailyRecords))
	for i, r := range *st.DailyRecords {
		if r.Date == nil || r.Tasks == nil || r.TotalStars == nil {
			return validationf("daily record %d is missing date, tasks or totalStars", i)
		}
		records = append(records, DailyRecord{
			Date:       *r.Date,
			Tasks:      *r.Tasks,
			TotalStars: *r.TotalStars,
		})
	}

	achievements := achievementCatalog()
	for i, a := range *st.Achievements {
		if a.ID == nil || a.Name == nil || a.Unlocked == nil {
			return validationf("achievement %d is missing id, name or unlocked", i)
		}
		if !*a.Unlocked {
			continue
		}
		for j := range achievements {
			if achievements[j].ID == *a.ID {
				achievements[j].Unlocked = true
				achievements[j].UnlockedAt = a.UnlockedAt
				break
			}
		}
	}

	next := AppState{
		TotalStars:    *st.TotalStars,
		CurrentStreak: *st.CurrentStreak,
		DailyRecords:  records,
		Achievements:  achievements,
		CustomTasks:   st.CustomTasks,
		TaskTemplates: st.TaskTemplates,
		AdminPassword: s.state.AdminPassword,
	}

	prev := s.state
	s.state = &next
	if err := s.save(ctx); err != nil {
		s.state = prev
		return err
	}
	s.log.Debug("state imported",
		zap.Int("version", *doc.Version),
		zap.Int("totalStars", next.TotalStars),
		zap.Int("records", len(next.DailyRecords)))
	return nil
}
