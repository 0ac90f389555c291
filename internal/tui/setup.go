package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// SetupModel is the Bubble Tea model for the first-run screen. It asks for
// the master password twice and stores it. On success the router moves to
// the login page with a [SetupDoneNotice].
type SetupModel struct {
	ctx    context.Context
	master service.MasterAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewSetupModel creates a [SetupModel] with two masked password inputs.
func NewSetupModel(ctx context.Context, master service.MasterAuthService) *SetupModel {
	fields := make([]textinput.Model, 2)

	fields[0] = textinput.New()
	fields[0].Placeholder = "master password"
	fields[0].EchoMode = textinput.EchoPassword
	fields[0].EchoCharacter = '*'
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "repeat master password"
	fields[1].EchoMode = textinput.EchoPassword
	fields[1].EchoCharacter = '*'
	fields[1].Width = 40

	return &SetupModel{
		ctx:    ctx,
		master: master,
		inputs: fields,
	}
}

// Init implements [tea.Model].
func (m *SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [SetupResult] clears the submitting state; on success navigates to
//     the login page.
//   - tab / shift+tab move focus between the inputs.
//   - enter checks that both inputs match and stores the master password.
//
// All other key events are forwarded to the focused input widget.
func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(SetupResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = app.MessageFor(result.Err)
			return m, nil
		}

		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: SetupDoneNotice{}} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			password := m.inputs[0].Value()
			repeat := m.inputs[1].Value()
			switch {
			case password == "":
				m.errMsg = app.MsgEmptyMasterPassword
				return m, nil
			case password != repeat:
				m.errMsg = app.MsgPasswordsDoNotMatch
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSetup(password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *SetupModel) View() string {
	var b strings.Builder
	b.WriteString("No vault found. Choose a master password.\n")
	b.WriteString("It cannot be recovered if you forget it.\n\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Repeat   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Create vault...]\n")
	} else {
		b.WriteString("\n[Create vault]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW VAULT", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: confirm")
}

func (m *SetupModel) cmdSetup(password string) tea.Cmd {
	ctx := m.ctx
	master := m.master

	return func() tea.Msg {
		return SetupResult{Err: master.Setup(ctx, password)}
	}
}

func (m *SetupModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *SetupModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SetupModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
