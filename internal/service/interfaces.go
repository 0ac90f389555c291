// Package service holds the vault engine: master password setup and
// verification, the unlocked vault session and the password generator.
// Presentation layers talk to it with plain strings only.
package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// MasterAuthService manages the master secret.
//
// The vault moves from uninitialized to initialized on the first successful
// Setup and never goes back.
type MasterAuthService interface {
	// IsInitialized reports whether a master secret exists.
	IsInitialized(ctx context.Context) (bool, error)

	// Setup stores the master secret for password, replacing any previous
	// one. An empty password fails with [ErrValidation].
	Setup(ctx context.Context, password string) error

	// Verify reports whether candidate matches the stored master secret.
	// It is false when no secret exists and for the empty candidate.
	Verify(ctx context.Context, candidate string) bool

	// Unlock verifies candidate and returns the encoder of the vault.
	// Errors: [ErrNotInitialized], [ErrAuthFailed], store.ErrPersistence,
	// store.ErrCorruptData (unreadable master secret).
	Unlock(ctx context.Context, candidate string) (crypto.Encoder, error)
}

// VaultService opens vault sessions.
type VaultService interface {
	// Open unlocks the vault with masterPassword and loads the document.
	// When the stored document is corrupt it returns a usable session over
	// an empty document together with store.ErrCorruptData.
	Open(ctx context.Context, masterPassword string) (*Session, error)
}

// PasswordGenerator produces random passwords.
type PasswordGenerator interface {
	// Generate returns a password of exactly length characters with at
	// least one letter, digit and punctuation character.
	Generate(length int) (string, error)
}

// AppInfoService exposes build metadata to the presentation layers.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
