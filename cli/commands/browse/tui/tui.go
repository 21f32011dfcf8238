// Package tui provides the interactive card browser of the browse command.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gruntwork-io/notecards/internal/errors"
)

// Run starts the card browser and blocks until the user quits or ctx is done.
func Run(ctx context.Context, model Model) error {
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if cause := context.Cause(ctx); errors.Is(cause, context.Canceled) {
			return nil
		}

		return errors.New(err)
	}

	return nil
}
