package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) opens the vault page once a session is unlocked
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx      context.Context
	services *service.Services

	pages   map[string]tea.Model
	current tea.Model
	session *service.Session

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, services *service.Services, pages map[string]tea.Model, startPage string) RootModel {
	return RootModel{
		ctx:       ctx,
		services:  services,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: services.AppInfo.GetBuildInfo(ctx),
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "ctrl+b":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	// Finish the unlock flow once a session exists.
	if result, ok := msg.(UnlockResult); ok && result.Session != nil {
		r.session = result.Session

		vault := NewVaultModel(r.ctx, r.services, result.Session)
		if result.Err != nil {
			vault.showError(app.MessageFor(result.Err))
		}
		r.pages[pageVault] = vault
		r.current = vault
		return r, vault.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("go-pass-vault", "", "")
	}
	return r.current.View()
}

// Session returns the session unlocked during the run, if any.
func (r RootModel) Session() *service.Session {
	return r.session
}
