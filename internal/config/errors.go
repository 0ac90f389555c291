package config

import "errors"

// Validation errors returned by [VaultConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid engine settings (unknown
	// scheme, too short generator length, zero KDF cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings (unknown
	// backend, missing paths or DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates invalid logging settings.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
