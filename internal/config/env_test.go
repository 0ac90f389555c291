// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",

	"APP_SCHEME",
	"APP_PASSWORD_LENGTH",
	"APP_KDF_TIME",
	"APP_KDF_MEMORY",
	"APP_KDF_THREADS",

	"STORAGE_BACKEND",
	"STORAGE_FILES_VAULT_FILE",
	"STORAGE_FILES_MASTER_FILE",
	"STORAGE_DB_DSN",

	"LOG_FILE",
	"LOG_LEVEL",
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_SCHEME":          "base64",
		"APP_PASSWORD_LENGTH": "20",
		"APP_KDF_TIME":        "3",
		"APP_KDF_MEMORY":      "32768",
		"APP_KDF_THREADS":     "2",

		// Storage has nested prefixes: STORAGE_ + DB_ / FILES_
		"STORAGE_BACKEND":           "sqlite",
		"STORAGE_FILES_VAULT_FILE":  "/data/vault.txt",
		"STORAGE_FILES_MASTER_FILE": "/data/master.txt",
		"STORAGE_DB_DSN":            "/data/vault.db",

		"LOG_FILE":  "/var/log/vault.log",
		"LOG_LEVEL": "debug",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "base64", cfg.App.Scheme)
	assert.Equal(t, 20, cfg.App.PasswordLength)
	assert.Equal(t, KDF{Time: 3, Memory: 32768, Threads: 2}, cfg.App.KDF)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/data/vault.txt", cfg.Storage.Files.VaultFile)
	assert.Equal(t, "/data/master.txt", cfg.Storage.Files.MasterFile)
	assert.Equal(t, "/data/vault.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "/var/log/vault.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_NoVariables(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "non-numeric length", key: "APP_PASSWORD_LENGTH", val: "twelve"},
		{name: "negative kdf time", key: "APP_KDF_TIME", val: "-1"},
		{name: "threads overflow", key: "APP_KDF_THREADS", val: "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error reading vault settings from environment")
		})
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every configuration variable for the duration of the
// test; t.Setenv restores the previous values on cleanup.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
