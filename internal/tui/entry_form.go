package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	formSite = iota
	formUsername
	formPassword
)

// entryForm collects site, username and password for a new or edited entry.
// When editing, the site is fixed and focus skips it.
type entryForm struct {
	inputs  []textinput.Model
	focus   int
	editing bool
	reveal  bool
	errMsg  string
}

func newEntryForm() *entryForm {
	fields := make([]textinput.Model, 3)

	fields[formSite] = textinput.New()
	fields[formSite].Placeholder = "example.com"
	fields[formSite].CharLimit = 256
	fields[formSite].Width = 40

	fields[formUsername] = textinput.New()
	fields[formUsername].Placeholder = "username or e-mail"
	fields[formUsername].CharLimit = 256
	fields[formUsername].Width = 40

	fields[formPassword] = textinput.New()
	fields[formPassword].Placeholder = "password (ctrl+g: generate)"
	fields[formPassword].CharLimit = 1024
	fields[formPassword].Width = 40
	fields[formPassword].EchoMode = textinput.EchoPassword
	fields[formPassword].EchoCharacter = '*'

	f := &entryForm{inputs: fields}
	f.setFocus(formSite)
	return f
}

func newEditEntryForm(cred models.Credential) *entryForm {
	f := newEntryForm()
	f.editing = true
	f.inputs[formSite].SetValue(cred.Site)
	f.inputs[formUsername].SetValue(cred.Username)
	f.inputs[formPassword].SetValue(cred.Password)
	f.setFocus(formUsername)
	return f
}

func (f *entryForm) values() (site, username, password string) {
	return f.inputs[formSite].Value(), f.inputs[formUsername].Value(), f.inputs[formPassword].Value()
}

func (f *entryForm) setPassword(password string) {
	f.inputs[formPassword].SetValue(password)
	f.inputs[formPassword].CursorEnd()
}

func (f *entryForm) toggleReveal() {
	f.reveal = !f.reveal
	if f.reveal {
		f.inputs[formPassword].EchoMode = textinput.EchoNormal
	} else {
		f.inputs[formPassword].EchoMode = textinput.EchoPassword
	}
}

func (f *entryForm) firstField() int {
	if f.editing {
		return formUsername
	}
	return formSite
}

func (f *entryForm) setFocus(idx int) {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = idx
	f.inputs[idx].Focus()
}

func (f *entryForm) focusNext() {
	next := f.focus + 1
	if next >= len(f.inputs) {
		next = f.firstField()
	}
	f.setFocus(next)
}

func (f *entryForm) focusPrev() {
	prev := f.focus - 1
	if prev < f.firstField() {
		prev = len(f.inputs) - 1
	}
	f.setFocus(prev)
}

func (f *entryForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *entryForm) view() string {
	var b strings.Builder
	labels := []string{"Site", "Username", "Password"}

	for i, label := range labels {
		b.WriteString(padRight(label, 9))
		b.WriteString("│ [")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
