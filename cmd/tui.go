package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/roster/internal/shared"
	"github.com/desertthunder/roster/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the full-screen student browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, logFile, err := shared.NewFileLogger(r.config.Logging.FilePath())
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer logFile.Close()
	shared.SetLogLevel(fileLogger, r.logger.GetLevel())
	defer r.SetLogger(r.logger)
	r.SetLogger(shared.WithLogger(fileLogger, "session", shared.SessionID()))

	store, err := r.openStore(ctx)
	if err != nil {
		return err
	}

	model := ui.NewModel(ctx, store)
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithInput(r.input), tea.WithOutput(r.output))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
