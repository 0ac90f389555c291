package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
)

const (
	pageSetup = "setup"
	pageLogin = "login"
	pageVault = "vault"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// SetupResult is produced by the setup page after an attempt to store the
// master password.
type SetupResult struct {
	Err error
}

// SetupDoneNotice is delivered to the login page after a successful setup.
type SetupDoneNotice struct{}

// UnlockResult is produced by the login page. Session is non-nil whenever
// the vault was unlocked, even when Err reports corrupt vault data.
type UnlockResult struct {
	Session *service.Session
	Err     error
}

type entrySavedMsg struct {
	site string
	err  error
}

type entryDeletedMsg struct {
	site string
	err  error
}

type passwordGeneratedMsg struct {
	password string
	err      error
}

type clearStatusMsg struct{}
