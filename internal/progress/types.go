package progress

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryStudy      Category = "study"
	CategoryExercise   Category = "exercise"
	CategoryBehavior   Category = "behavior"
	CategoryCreativity Category = "creativity"
)

// AllCategories lists every category, in the order reports show them.
var AllCategories = []Category{
	CategoryStudy,
	CategoryExercise,
	CategoryBehavior,
	CategoryCreativity,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryStudy, CategoryExercise, CategoryBehavior, CategoryCreativity:
		return true
	default:
		return false
	}
}

// ParseCategory parses user input to a Category.
// Supported: study, exercise, behavior, creativity (plus a few aliases).
func ParseCategory(input string) (Category, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "study", "school":
		return CategoryStudy, nil
	case "exercise", "sport", "sports":
		return CategoryExercise, nil
	case "behavior", "behaviour":
		return CategoryBehavior, nil
	case "creativity", "creative", "art":
		return CategoryCreativity, nil
	default:
		return "", fmt.Errorf("invalid category: %q", input)
	}
}

// Task is one unit of rewarded work, scoped to a single calendar day.
type Task struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Completed bool     `json:"completed"`
	Stars     int      `json:"stars"`
	Date      string   `json:"date"`
}

// TaskTemplate is a reusable task definition. Templates are soft-deleted so
// they can be restored from the trash at any time.
type TaskTemplate struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   Category  `json:"category"`
	Stars      int       `json:"stars"`
	Deleted    bool      `json:"deleted"`
	CreatedAt  time.Time `json:"createdAt"`
	UsageCount int       `json:"usageCount"`
}

// DailyRecord aggregates all tasks for one calendar date. TotalStars is the
// cached sum of stars over completed tasks and is recomputed on every task
// mutation within that day.
type DailyRecord struct {
	Date       string `json:"date"`
	Tasks      []Task `json:"tasks"`
	TotalStars int    `json:"totalStars"`
}

// Achievement is a one-way unlockable badge. Once unlocked it never re-locks,
// even if the triggering condition later stops holding.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedDate,omitempty"`
}

// AppState is the root aggregate that the store owns and persists wholesale.
type AppState struct {
	TotalStars    int            `json:"totalStars"`
	CurrentStreak int            `json:"currentStreak"`
	DailyRecords  []DailyRecord  `json:"dailyRecords"`
	Achievements  []Achievement  `json:"achievements"`
	CustomTasks   []Task         `json:"customTasks"`
	TaskTemplates []TaskTemplate `json:"taskTemplates"`
	AdminPassword string         `json:"adminPassword,omitempty"`
}

const dayLayout = "2006-01-02"

func dayOf(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

func parseDay(s string) (time.Time, error) {
	return time.Parse(dayLayout, s)
}

func countCompleted(tasks []Task) int {
	n := 0
	for i := range tasks {
		if tasks[i].Completed {
			n++
		}
	}
	return n
}

func sumCompletedStars(tasks []Task) int {
	sum := 0
	for i := range tasks {
		if tasks[i].Completed {
			sum += tasks[i].Stars
		}
	}
	return sum
}
