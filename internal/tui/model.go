package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"starbank/internal/progress"
	"starbank/internal/ui"
)

type boardModel struct {
	ctx   context.Context
	store *progress.Store

	width  int
	height int

	tasks      []progress.Task
	totalStars int
	streak     int
	weekly     progress.WeeklyStats

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	tasks      []progress.Task
	totalStars int
	streak     int
	weekly     progress.WeeklyStats
}

type actedMsg struct {
	verb string
	res  *progress.TaskResult
	err  error
}

func newBoardModel(ctx context.Context, store *progress.Store) boardModel {
	return boardModel{
		ctx:     ctx,
		store:   store,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{
			tasks:      m.store.TodayTasks(),
			totalStars: m.store.TotalStars(),
			streak:     m.store.Streak(),
			weekly:     m.store.WeeklyStats(),
		}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.store.CompleteTask(m.ctx, id)
		return actedMsg{verb: "Completed", res: res, err: err}
	}
}

func (m boardModel) uncompleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.store.UncompleteTask(m.ctx, id)
		return actedMsg{verb: "Undid", res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.tasks = msg.tasks
		m.totalStars = msg.totalStars
		m.streak = msg.streak
		m.weekly = msg.weekly
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case actedMsg:
		if msg.err != nil {
			m.lastLog = "Action failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res == nil {
			m.lastLog = "Nothing to do."
			return m, m.loadCmd()
		}
		line := fmt.Sprintf("%s %q (%+d stars, total %d)", msg.verb, msg.res.Task.Name, msg.res.StarsDelta, msg.res.TotalStars)
		for _, a := range msg.res.Unlocked {
			line += fmt.Sprintf("  %s %s!", a.Icon, a.Name)
		}
		m.lastLog = line
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			t := m.selectedTask()
			if t == nil {
				return m, nil
			}
			if t.Completed {
				m.lastLog = "Already done (press u to undo)."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %q…", t.Name)
			return m, m.completeCmd(t.ID)
		case "u":
			t := m.selectedTask()
			if t == nil {
				return m, nil
			}
			if !t.Completed {
				m.lastLog = "Not completed yet."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Undoing %q…", t.Name)
			return m, m.uncompleteCmd(t.ID)
		}
	}
	return m, nil
}

func (m boardModel) selectedTask() *progress.Task {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.selected]
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	completed := 0
	for i := range m.tasks {
		if m.tasks[i].Completed {
			completed++
		}
	}
	bar := progressBar(completed, len(m.tasks), 30)
	return fmt.Sprintf("StarBank | %d ⭐ total | streak %d 🔥 | today %d/%d %s",
		m.totalStars, m.streak, completed, len(m.tasks), bar)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"This week"}
	if len(m.weekly.Days) == 0 {
		lines = append(lines, "(no activity)")
	} else {
		for _, d := range m.weekly.Days {
			lines = append(lines, fmt.Sprintf("- %s %s", d.Date, progressBar(d.Completed, d.Tasks, 8)))
		}
		lines = append(lines, fmt.Sprintf("Stars: %d, done %.0f%%", m.weekly.TotalStars, m.weekly.CompletionRate))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- u: undo")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Today")
	if len(m.tasks) == 0 {
		out = append(out, "(no tasks yet, add some with `sb add`)")
		return strings.Join(out, "\n")
	}
	for i := range m.tasks {
		t := &m.tasks[i]
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s %s (%d⭐)", cursor, box, ui.CategoryIcon(t.Category), t.Name, t.Stars))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
