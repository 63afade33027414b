package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"starbank/internal/progress"
)

func RunBoard(ctx context.Context, store *progress.Store, out io.Writer) error {
	m := newBoardModel(ctx, store)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
