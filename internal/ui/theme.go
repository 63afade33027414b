package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"starbank/internal/progress"
)

// StarBank theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconStar     = "⭐"
	IconSparkle  = "✨"
	IconPlus     = "➕"
	IconDone     = "✅"
	IconUndo     = "↩️"
	IconTrash    = "🗑️"
	IconTrophy   = "🏆"
	IconFire     = "🔥"
	IconReport   = "📊"
	IconTemplate = "📋"
	IconLock     = "🔐"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconPiggy    = "🐷"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func CategoryIcon(c progress.Category) string {
	switch c {
	case progress.CategoryStudy:
		return "📚"
	case progress.CategoryExercise:
		return "🏃"
	case progress.CategoryBehavior:
		return "😊"
	case progress.CategoryCreativity:
		return "🎨"
	default:
		return "❔"
	}
}

func TaskCheckbox(completed bool) string {
	if completed {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}

// Stars renders a star count like "3⭐".
func Stars(n int) string {
	return Gold.Render(fmt.Sprintf("%d%s", n, IconStar))
}
