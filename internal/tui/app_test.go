package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

func newTestRoot(t *testing.T, services *service.Services, start string) RootModel {
	t.Helper()
	ctx := context.Background()
	pages := map[string]tea.Model{
		pageSetup: NewSetupModel(ctx, services.Master),
		pageLogin: NewLoginModel(ctx, services.Vault),
	}
	return NewRootModel(ctx, services, pages, start)
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestSetupModel_PasswordsMustMatch(t *testing.T) {
	services := newTestServices(t)
	m := NewSetupModel(context.Background(), services.Master)

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgEmptyMasterPassword, m.errMsg)

	m.inputs[0].SetValue(testMaster)
	m.inputs[1].SetValue("something else")
	_, cmd = m.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgPasswordsDoNotMatch, m.errMsg)

	ok, err := services.Master.IsInitialized(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRootModel_SetupThenUnlock(t *testing.T) {
	ctx := context.Background()
	services := newTestServices(t)
	root := newTestRoot(t, services, pageSetup)

	setup := root.current.(*SetupModel)
	setup.inputs[0].SetValue(testMaster)
	setup.inputs[1].SetValue(testMaster)

	root, cmd := update(t, root, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)

	// SetupResult -> NavigateTo -> SetupDoneNotice
	root, cmd = update(t, root, cmd())
	require.NotNil(t, cmd)
	root, cmd = update(t, root, cmd())
	require.NotNil(t, cmd)
	assert.IsType(t, &LoginModel{}, root.current)

	root, _ = update(t, root, cmd())
	assert.Contains(t, root.View(), "Master password set")

	ok, err := services.Master.IsInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	login := root.current.(*LoginModel)
	login.input.SetValue(testMaster)
	root, cmd = update(t, root, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)

	root, _ = update(t, root, cmd())
	require.NotNil(t, root.Session())
	defer root.Session().Close()
	assert.IsType(t, &VaultModel{}, root.current)
	assert.Contains(t, root.View(), "No entries yet")
}

func TestRootModel_WrongPasswordStaysOnLogin(t *testing.T) {
	ctx := context.Background()
	services := newTestServices(t)
	require.NoError(t, services.Master.Setup(ctx, testMaster))
	root := newTestRoot(t, services, pageLogin)

	login := root.current.(*LoginModel)
	login.input.SetValue("hunter2")
	root, cmd := update(t, root, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)

	root, _ = update(t, root, cmd())
	assert.Nil(t, root.Session())
	assert.Same(t, login, root.current)
	assert.Equal(t, app.MsgAuthFailed, login.errMsg)
	assert.Empty(t, login.input.Value(), "a rejected password is cleared")
}

func TestRootModel_CorruptVaultOpensWithWarning(t *testing.T) {
	services := newTestServices(t)
	_, session := newTestVaultModel(t)

	root := newTestRoot(t, services, pageLogin)
	root, _ = update(t, root, UnlockResult{Session: session, Err: store.ErrCorruptData})

	vault, ok := root.current.(*VaultModel)
	require.True(t, ok)
	require.NotNil(t, vault.overlay)
	assert.Equal(t, app.MsgCorruptData, vault.overlay.message)
}

func TestRootModel_CorruptMasterSecretStaysOnLogin(t *testing.T) {
	services := newTestServices(t)
	root := newTestRoot(t, services, pageLogin)

	login := root.current.(*LoginModel)
	login.input.SetValue(testMaster)
	login.submitting = true

	root, _ = update(t, root, UnlockResult{Err: fmt.Errorf("%w: master secret: malformed record", store.ErrCorruptData)})
	assert.Nil(t, root.Session())
	assert.Same(t, login, root.current)
	assert.False(t, login.submitting)
	assert.Equal(t, app.MsgCorruptData, login.errMsg)
	assert.Empty(t, login.input.Value())
	assert.Contains(t, root.View(), app.MsgCorruptData)
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	services := newTestServices(t)
	root := newTestRoot(t, services, pageSetup)

	root, _ = update(t, root, keyOf(tea.KeyCtrlB))
	view := root.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Commit: abc123")

	root, _ = update(t, root, keyOf(tea.KeyEsc))
	assert.NotContains(t, root.View(), "Version: 1.0.0")
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	services := newTestServices(t)
	root := newTestRoot(t, services, pageSetup)

	_, cmd := update(t, root, keyOf(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestNew_NilServices(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "example.com", fitText("example.com", 20))
	assert.Equal(t, "exam...", fitText("example.com", 7))
	assert.Equal(t, "ex", fitText("example.com", 2))
	assert.Equal(t, "пр...", fitText("привет мир", 5))
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "••••••••", maskSecret("s3cret!", false))
	assert.Equal(t, "s3cret!", maskSecret("s3cret!", true))
	assert.Equal(t, "", maskSecret("", false))
}
