// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Bounds of the configured generator length. The minimum holds one
// character of every generator class.
const (
	minPasswordLength = 3
	maxPasswordLength = 4096
)

// validate checks the merged [StructuredConfig]. Per-binary rules live on
// the derived views.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *VaultConfig) validate() error {
	switch strings.ToLower(cfg.App.Scheme) {
	case "aead", "base64":
	default:
		return fmt.Errorf("%w: unknown scheme %q", ErrInvalidAppConfigs, cfg.App.Scheme)
	}

	if cfg.App.PasswordLength < minPasswordLength {
		return fmt.Errorf("%w: password length must be at least %d", ErrInvalidAppConfigs, minPasswordLength)
	}
	if cfg.App.PasswordLength > maxPasswordLength {
		return fmt.Errorf("%w: password length must be at most %d", ErrInvalidAppConfigs, maxPasswordLength)
	}

	if cfg.App.KDF.Time == 0 || cfg.App.KDF.Memory == 0 || cfg.App.KDF.Threads == 0 {
		return fmt.Errorf("%w: kdf parameters must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.Backend {
	case BackendFile:
		if cfg.Storage.Files.VaultFile == "" || cfg.Storage.Files.MasterFile == "" {
			return fmt.Errorf("%w: file backend needs vault and master files", ErrInvalidStorageConfigs)
		}
		if cfg.Storage.Files.VaultFile == cfg.Storage.Files.MasterFile {
			return fmt.Errorf("%w: vault and master files must differ", ErrInvalidStorageConfigs)
		}
	case BackendSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: sqlite backend needs a dsn", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Log.File == "" {
		return fmt.Errorf("%w: empty log file", ErrInvalidLogConfigs)
	}

	return nil
}
