package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/todo"
)

// RunOptions extend Options with program settings.
type RunOptions struct {
	Options
	AltScreen bool
}

// Run starts the interactive list and blocks until the user quits. The
// list is written to the store on every change, so nothing is saved here.
func Run(ctx context.Context, mgr *todo.Manager, opts RunOptions) error {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	opts.Logger.Info("starting interactive list")
	if _, err := tea.NewProgram(New(ctx, mgr, opts.Options), progOpts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
