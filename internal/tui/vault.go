package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultMode int

const (
	modeList vaultMode = iota
	modeDetail
	modeForm
	modeConfirmDelete
)

const (
	siteColumnWidth = 32
	userColumnWidth = 28
	statusTTL       = 3 * time.Second
)

var (
	defaultCopyToClipboard = clipboard.WriteAll
	// copyToClipboard is replaced in tests.
	copyToClipboard = defaultCopyToClipboard
)

// VaultModel is the Bubble Tea model of an unlocked vault: the entry list
// with search, the detail view, the add/edit form and the delete
// confirmation.
type VaultModel struct {
	ctx      context.Context
	services *service.Services
	session  *service.Session

	items []models.Credential
	idx   int
	mode  vaultMode

	search    textinput.Model
	searching bool

	reveal  bool
	form    *entryForm
	confirm confirmModel
	overlay *errorOverlayModel

	busy   bool
	status string
}

// NewVaultModel creates a [VaultModel] over an unlocked session.
func NewVaultModel(ctx context.Context, services *service.Services, session *service.Session) *VaultModel {
	search := textinput.New()
	search.Placeholder = "search by site or username"
	search.Width = 40

	m := &VaultModel{
		ctx:      ctx,
		services: services,
		session:  session,
		search:   search,
	}
	m.reload()
	return m
}

func (m *VaultModel) Init() tea.Cmd {
	return nil
}

func (m *VaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entrySavedMsg:
		m.busy = false
		if msg.err != nil {
			if m.form != nil {
				m.form.errMsg = app.MessageFor(msg.err)
			} else {
				m.showError(app.MessageFor(msg.err))
			}
			return m, nil
		}
		m.form = nil
		m.mode = modeList
		m.reload()
		m.selectSite(msg.site)
		return m, m.setStatus("Saved " + msg.site)

	case entryDeletedMsg:
		m.busy = false
		m.mode = modeList
		if msg.err != nil {
			m.showError(app.MessageFor(msg.err))
			return m, nil
		}
		m.reload()
		return m, m.setStatus("Deleted " + msg.site)

	case passwordGeneratedMsg:
		if m.form == nil {
			return m, nil
		}
		if msg.err != nil {
			m.form.errMsg = app.MessageFor(msg.err)
			return m, nil
		}
		m.form.errMsg = ""
		m.form.setPassword(msg.password)
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeForm && m.form != nil {
			return m, m.form.update(msg)
		}
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(keyMsg)
	case modeConfirmDelete:
		return m.updateConfirm(keyMsg)
	case modeDetail:
		return m.updateDetail(keyMsg)
	default:
		if m.searching {
			return m.updateSearch(keyMsg)
		}
		return m.updateList(keyMsg)
	}
}

func (m *VaultModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.esc):
		m.search.Reset()
		m.idx = 0
	case key.Matches(msg, keys.newItem):
		m.openForm(newEntryForm())
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.mode = modeDetail
			m.reveal = false
		}
	case key.Matches(msg, keys.edit):
		if cred, ok := m.current(); ok {
			m.openForm(newEditEntryForm(cred))
		}
	case key.Matches(msg, keys.delete):
		if cred, ok := m.current(); ok {
			m.confirm = confirmModel{site: cred.Site}
			m.mode = modeConfirmDelete
		}
	case key.Matches(msg, keys.copy):
		if cred, ok := m.current(); ok {
			return m, m.copy(cred.Password, "Password copied")
		}
	case key.Matches(msg, keys.copyUser):
		if cred, ok := m.current(); ok {
			return m, m.copy(cred.Username, "Username copied")
		}
	}

	return m, nil
}

func (m *VaultModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.Reset()
		m.search.Blur()
		m.searching = false
		m.idx = 0
		return m, nil
	case "enter":
		m.search.Blur()
		m.searching = false
		return m, nil
	case "up":
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case "down":
		if m.idx < len(m.visible())-1 {
			m.idx++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.idx = 0
	return m, cmd
}

func (m *VaultModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cred, ok := m.current()
	if !ok {
		m.mode = modeList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.mode = modeList
		m.reveal = false
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(msg, keys.copy):
		return m, m.copy(cred.Password, "Password copied")
	case key.Matches(msg, keys.copyUser):
		return m, m.copy(cred.Username, "Username copied")
	case key.Matches(msg, keys.edit):
		m.reveal = false
		m.openForm(newEditEntryForm(cred))
	case key.Matches(msg, keys.delete):
		m.reveal = false
		m.confirm = confirmModel{site: cred.Site}
		m.mode = modeConfirmDelete
	}

	return m, nil
}

func (m *VaultModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.form = nil
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.generate):
		return m, m.cmdGenerate()
	case key.Matches(msg, keys.revealInput):
		m.form.toggleReveal()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.focus < formPassword {
			m.form.focusNext()
			return m, nil
		}
		site, username, password := m.form.values()
		m.form.errMsg = ""
		m.busy = true
		return m, m.cmdSave(site, username, password)
	}

	return m, m.form.update(msg)
}

func (m *VaultModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.busy = true
		return m, m.cmdDelete(m.confirm.site)
	case key.Matches(msg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m *VaultModel) View() string {
	var title, body, hotKeys string

	switch m.mode {
	case modeForm:
		title = "NEW ENTRY"
		if m.form.editing {
			title = "EDIT ENTRY"
		}
		body = m.form.view()
		hotKeys = "tab: next field │ ctrl+g: generate │ ctrl+r: show/hide │ enter: save │ esc: cancel"
	case modeDetail:
		title, body, hotKeys = m.viewDetail()
	default:
		title = "VAULT"
		body = m.viewList()
		hotKeys = "↑/↓: move │ enter: open │ a: add │ e: edit │ d: delete │ /: search │ c: copy password │ q: quit"
		if m.searching {
			hotKeys = "type to filter │ enter: keep filter │ esc: clear"
		}
	}

	if m.status != "" {
		body = statusStyle.Render("OK: "+m.status) + "\n\n" + body
	}

	page := renderPage(title, body, hotKeys)
	switch {
	case m.overlay != nil:
		page += "\n\n" + m.overlay.View()
	case m.mode == modeConfirmDelete:
		page += "\n\n" + m.confirm.View()
	}
	return page
}

func (m *VaultModel) viewList() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString("Search │ ")
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	visible := m.visible()
	if len(m.items) == 0 {
		b.WriteString("No entries yet. Press a to add one.")
		return b.String()
	}
	if len(visible) == 0 {
		b.WriteString("Nothing matches the search.")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  %s │ %s\n", padRight("Site", siteColumnWidth), "Username"))
	b.WriteString(strings.Repeat("─", siteColumnWidth+2))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", userColumnWidth))
	b.WriteString("\n")

	for i, cred := range visible {
		row := fmt.Sprintf("%s │ %s",
			padRight(fitText(cred.Site, siteColumnWidth), siteColumnWidth),
			fitText(cred.Username, userColumnWidth),
		)
		if i == m.idx {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(row))
		} else {
			b.WriteString("  ")
			b.WriteString(row)
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n%d of %d entries", len(visible), len(m.items)))
	return b.String()
}

func (m *VaultModel) viewDetail() (title, body, hotKeys string) {
	cred, ok := m.current()
	if !ok {
		return "ENTRY", "", "esc: back"
	}

	var b strings.Builder
	b.WriteString("Site     │ ")
	b.WriteString(cred.Site)
	b.WriteString("\n")
	b.WriteString("Username │ ")
	b.WriteString(cred.Username)
	b.WriteString("\n")
	b.WriteString("Password │ ")
	b.WriteString(maskSecret(cred.Password, m.reveal))

	return "ENTRY", b.String(), "space: show/hide │ c: copy password │ u: copy username │ e: edit │ d: delete │ esc: back"
}

// visible returns the entries matching the search, in vault order.
func (m *VaultModel) visible() []models.Credential {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		return m.items
	}

	filtered := make([]models.Credential, 0, len(m.items))
	for _, cred := range m.items {
		if strings.Contains(strings.ToLower(cred.Site), query) ||
			strings.Contains(strings.ToLower(cred.Username), query) {
			filtered = append(filtered, cred)
		}
	}
	return filtered
}

func (m *VaultModel) current() (models.Credential, bool) {
	visible := m.visible()
	if m.idx < 0 || m.idx >= len(visible) {
		return models.Credential{}, false
	}
	return visible[m.idx], true
}

func (m *VaultModel) reload() {
	m.items = m.session.ListAll(m.ctx)
	if visible := m.visible(); m.idx >= len(visible) {
		m.idx = max(len(visible)-1, 0)
	}
}

func (m *VaultModel) selectSite(site string) {
	if idx := slices.IndexFunc(m.visible(), func(c models.Credential) bool { return c.Site == site }); idx >= 0 {
		m.idx = idx
	}
}

func (m *VaultModel) openForm(form *entryForm) {
	m.form = form
	m.mode = modeForm
}

func (m *VaultModel) showError(message string) {
	m.overlay = &errorOverlayModel{message: message}
}

func (m *VaultModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *VaultModel) copy(value, status string) tea.Cmd {
	if err := copyToClipboard(value); err != nil {
		m.showError("clipboard is not available: " + err.Error())
		return nil
	}
	return m.setStatus(status)
}

func (m *VaultModel) cmdSave(site, username, password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		err := session.AddOrUpdate(ctx, site, username, password)
		return entrySavedMsg{site: strings.TrimSpace(site), err: err}
	}
}

func (m *VaultModel) cmdDelete(site string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return entryDeletedMsg{site: site, err: session.Delete(ctx, site)}
	}
}

func (m *VaultModel) cmdGenerate() tea.Cmd {
	generator := m.services.Generator
	length := m.services.PasswordLength

	return func() tea.Msg {
		password, err := generator.Generate(length)
		return passwordGeneratedMsg{password: password, err: err}
	}
}
