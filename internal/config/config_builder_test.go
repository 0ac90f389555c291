package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source
// is not overwritten by a later one, while unset fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Scheme: "base64"}},
		&StructuredConfig{App: App{Scheme: "aead", PasswordLength: 30}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "base64", cfg.App.Scheme)
	assert.Equal(t, 30, cfg.App.PasswordLength)
}

// ── withFlags / withEnv / withJSON / withDefaults ─────────────────────────────

func TestWithFlags_NilIsSkipped(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

func TestWithEnv_ErrorIsAccumulated(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_PASSWORD_LENGTH": "x"})

	b := newConfigBuilder().withEnv()
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_PathFromEarliestSource(t *testing.T) {
	clearEnvVars(t)
	first := writeTempJSONConfig(t, map[string]any{"storage": map[string]any{"backend": "sqlite"}})
	second := writeTempJSONConfig(t, map[string]any{"storage": map[string]any{"backend": "file"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "sqlite", b.configs[2].Storage.Backend)
}

func TestWithJSON_MissingFileIsAnError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Priority(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"scheme": "aead", "password_length": 40},
		"storage": map[string]any{"backend": "sqlite", "db": map[string]any{"dsn": "json.db"}},
		"log":     map[string]any{"level": "error"},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":              jsonPath,
		"APP_PASSWORD_LENGTH": "20",
		"STORAGE_DB_DSN":      "env.db",
	})

	flags := &StructuredConfig{App: App{Scheme: "base64"}}

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "base64", cfg.App.Scheme, "flag beats json")
	assert.Equal(t, 20, cfg.App.PasswordLength, "env beats json")
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN, "env beats json")
	assert.Equal(t, "sqlite", cfg.Storage.Backend, "json beats default")
	assert.Equal(t, "error", cfg.Log.Level, "json beats default")
	assert.Equal(t, DefaultVaultFile, cfg.Storage.Files.VaultFile, "default fills the rest")
	assert.Equal(t, KDF{Time: DefaultKDFTime, Memory: DefaultKDFMemory, Threads: DefaultKDFThreads}, cfg.App.KDF)
}

// ── GetVaultConfig ────────────────────────────────────────────────────────────

func TestGetVaultConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetVaultConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "aead", cfg.App.Scheme)
	assert.Equal(t, 12, cfg.App.PasswordLength)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "password_data.txt", cfg.Storage.Files.VaultFile)
	assert.Equal(t, "master_key.txt", cfg.Storage.Files.MasterFile)
	assert.Equal(t, "vault.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestGetVaultConfig_ValidationError(t *testing.T) {
	clearEnvVars(t)

	_, err := GetVaultConfig(&StructuredConfig{Storage: Storage{Backend: "s3"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestGetVaultConfig_BuildError(t *testing.T) {
	setEnvVars(t, map[string]string{"CONFIG": filepath.Join(t.TempDir(), "nope.json")})

	cfg, err := GetVaultConfig(nil)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error get structured config")
}
