// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-pass-vault application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds vault engine settings: encoding scheme, generator length
	// and key derivation cost.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log configures the file logger.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds vault engine settings.
type App struct {
	// Scheme is the encoding scheme used when a new vault is initialized
	// ("aead" or "base64"). Existing vaults keep the scheme recorded in
	// their master secret.
	// Env: APP_SCHEME
	Scheme string `env:"SCHEME"`

	// PasswordLength is the default length of generated passwords.
	// Env: APP_PASSWORD_LENGTH
	PasswordLength int `env:"PASSWORD_LENGTH"`

	// KDF holds the Argon2id cost parameters for new vaults.
	KDF KDF `envPrefix:"KDF_"`
}

// KDF holds Argon2id cost parameters.
type KDF struct {
	// Time is the number of passes. Env: APP_KDF_TIME
	Time uint32 `env:"TIME"`
	// Memory is the memory cost in KiB. Env: APP_KDF_MEMORY
	Memory uint32 `env:"MEMORY"`
	// Threads is the parallelism. Env: APP_KDF_THREADS
	Threads uint8 `env:"THREADS"`
}

// Storage groups the configuration of both storage backends.
type Storage struct {
	// Backend is "file" or "sqlite".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Files configures the file backend.
	Files Files `envPrefix:"FILES_"`

	// DB configures the sqlite backend.
	DB DB `envPrefix:"DB_"`
}

// Files holds the paths of the file backend.
type Files struct {
	// VaultFile holds the encoded vault document.
	// Env: STORAGE_FILES_VAULT_FILE
	VaultFile string `env:"VAULT_FILE"`

	// MasterFile holds the master secret.
	// Env: STORAGE_FILES_MASTER_FILE
	MasterFile string `env:"MASTER_FILE"`
}

// DB holds the sqlite connection settings.
type DB struct {
	// DSN is the sqlite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log configures the application log file.
type Log struct {
	// File is the log file path. Env: LOG_FILE
	File string `env:"FILE"`
	// Level is a zerolog level name. Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (earlier sources win for non-zero fields):
//  1. Command-line flags (flagCfg, may be nil)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
