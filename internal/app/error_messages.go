// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording shared by the terminal UI and
// the vault subcommands.
//
// All Msg* constants are human-readable message strings shown in place of the
// error chains returned by the service layer. Keeping them in one place
// ensures consistent wording across both presentation layers.
package app

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

const (
	// MsgNotInitialized is shown when a command needs a master password but
	// none has been set yet.
	MsgNotInitialized = "vault is not initialized, set a master password first"

	// MsgAlreadyInitialized is shown when initialization would replace an
	// existing master password.
	MsgAlreadyInitialized = "vault is already initialized"

	// MsgAuthFailed is shown for a wrong master password.
	MsgAuthFailed = "incorrect master password"

	// MsgEmptyMasterPassword is shown when setup is attempted with an empty
	// master password.
	MsgEmptyMasterPassword = "master password cannot be empty"

	// MsgPasswordsDoNotMatch is shown when the repeated master password
	// differs from the first one.
	MsgPasswordsDoNotMatch = "passwords do not match"

	// MsgFieldsRequired is shown when a credential is missing a site,
	// username or password.
	MsgFieldsRequired = "site, username and password are required"

	MsgEmptySite     = "site is required"
	MsgEmptyUsername = "username is required"
	MsgEmptyPassword = "password is required"

	// MsgNotFound is shown when no entry exists for the requested site.
	MsgNotFound = "no entry for this site"

	// MsgCorruptData is shown when the stored vault or master secret cannot
	// be decoded. The stored data is left untouched.
	MsgCorruptData = "vault data is corrupt or was written with another key"

	// MsgPersistence is shown when vault data cannot be read or written.
	MsgPersistence = "could not read or write vault data"

	// MsgPasswordTooShort is shown when a generated password is requested
	// with a length below the minimum.
	MsgPasswordTooShort = "password length must be at least 3"

	// MsgPasswordTooLong is shown when a generated password is requested
	// with a length above the maximum.
	MsgPasswordTooLong = "password length must be at most 4096"

	// MsgSessionClosed is shown when the vault was locked in the meantime.
	MsgSessionClosed = "vault is locked"

	// MsgUnknownScheme is shown for an unsupported encoding scheme.
	MsgUnknownScheme = "unknown encoding scheme"

	// MsgInvalidConfig is shown when the configuration fails validation.
	MsgInvalidConfig = "invalid configuration"

	// MsgInternalError is shown for anything without a dedicated message.
	MsgInternalError = "unexpected error"
)

// messages is checked in order, so specific sentinels come before the
// generic ones that wrap them.
var messages = []struct {
	err error
	msg string
}{
	{validators.ErrEmptyMasterPassword, MsgEmptyMasterPassword},
	{validators.ErrEmptySite, MsgEmptySite},
	{validators.ErrEmptyUsername, MsgEmptyUsername},
	{validators.ErrEmptyPassword, MsgEmptyPassword},
	{service.ErrValidation, MsgFieldsRequired},
	{service.ErrNotInitialized, MsgNotInitialized},
	{service.ErrAlreadyInitialized, MsgAlreadyInitialized},
	{service.ErrAuthFailed, MsgAuthFailed},
	{service.ErrNotFound, MsgNotFound},
	{service.ErrSessionClosed, MsgSessionClosed},
	{utils.ErrPasswordTooShort, MsgPasswordTooShort},
	{utils.ErrPasswordTooLong, MsgPasswordTooLong},
	{store.ErrCorruptData, MsgCorruptData},
	{store.ErrPersistence, MsgPersistence},
	{crypto.ErrUnknownScheme, MsgUnknownScheme},
	{config.ErrInvalidAppConfigs, MsgInvalidConfig},
	{config.ErrInvalidStorageConfigs, MsgInvalidConfig},
	{config.ErrInvalidLogConfigs, MsgInvalidConfig},
}

// MessageFor returns the user-facing message for err, or an empty string
// for a nil error.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return MsgInternalError
}
