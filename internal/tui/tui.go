// Package tui is the interactive terminal front end of the vault, built on
// Bubble Tea. It only talks to the vault through [service.Services].
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	return &TUI{services: services, logger: log}, nil
}

// Run shows the setup page for a new vault or the unlock page for an
// existing one and blocks until the user quits. The unlocked session is
// closed before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	initialized, err := t.services.Master.IsInitialized(ctx)
	if err != nil {
		return err
	}

	startPage := pageLogin
	if !initialized {
		startPage = pageSetup
	}

	pages := map[string]tea.Model{
		pageSetup: NewSetupModel(ctx, t.services.Master),
		pageLogin: NewLoginModel(ctx, t.services.Vault),
	}

	root := NewRootModel(ctx, t.services, pages, startPage)
	t.logger.Info().Str("func", "TUI.Run").Str("page", startPage).Msg("starting terminal UI")

	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if result, ok := finalModel.(RootModel); ok && result.Session() != nil {
		result.Session().Close()
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}

	return nil
}
