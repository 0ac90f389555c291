// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// LoginModel is the Bubble Tea model for the unlock screen. It renders a
// single masked input and dispatches an async unlock command on submission.
// The resulting [UnlockResult] is handled by [RootModel] when a session was
// opened and by the model itself otherwise.
type LoginModel struct {
	ctx   context.Context
	vault service.VaultService

	input      textinput.Model
	submitting bool
	status     string
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with a focused, masked password input.
func NewLoginModel(ctx context.Context, vault service.VaultService) *LoginModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "master password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return &LoginModel{
		ctx:   ctx,
		vault: vault,
		input: passwordInput,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [SetupDoneNotice] shows a confirmation after first-run setup.
//   - [UnlockResult] without a session clears the submitting state and
//     reports the error.
//   - enter dispatches the async unlock command.
//
// All other key events are forwarded to the input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SetupDoneNotice:
		m.status = "Master password set. Unlock the vault to continue."
		return m, textinput.Blink
	case UnlockResult:
		m.submitting = false
		// Results carrying a session are routed to the vault page, so any
		// error seen here left the vault locked.
		if msg.Err != nil {
			m.errMsg = app.MessageFor(msg.Err)
			m.input.Reset()
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && keyMsg.String() == "enter" {
		if m.submitting {
			return m, nil
		}

		pass := m.input.Value()
		if pass == "" {
			m.errMsg = app.MsgAuthFailed
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdUnlock(pass)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(statusStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}

	b.WriteString("Master password │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Unlock...]\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), "enter: unlock")
}

func (m *LoginModel) cmdUnlock(pass string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		session, err := vault.Open(ctx, pass)
		return UnlockResult{Session: session, Err: err}
	}
}
