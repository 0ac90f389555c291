package service

import "errors"

var (
	// ErrNotInitialized is returned when no master secret exists yet.
	ErrNotInitialized = errors.New("vault is not initialized")
	// ErrAlreadyInitialized is returned by callers that refuse to replace an
	// existing master secret.
	ErrAlreadyInitialized = errors.New("vault is already initialized")
	// ErrAuthFailed is returned when the master password does not match.
	ErrAuthFailed = errors.New("incorrect master password")
	// ErrValidation wraps a validators error for bad caller input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when no entry exists for a site.
	ErrNotFound = errors.New("entry not found")
	// ErrSessionClosed is returned by every [Session] method after Close.
	ErrSessionClosed = errors.New("session is closed")
	// ErrBuildInfoNotSpecified is returned when the binary carries no
	// version.
	ErrBuildInfoNotSpecified = errors.New("build version is not specified")
)
