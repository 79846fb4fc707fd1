package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(ctx context.Context, dir string, force bool) error {
	browser, err := CreateBrowser(ctx, dir, force)
	if err != nil {
		return err
	}
	if err := tea.NewProgram(browser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
