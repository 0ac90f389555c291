package crypto

import "errors"

var (
	// ErrUnknownScheme is returned for a scheme name that has no encoder.
	ErrUnknownScheme = errors.New("unknown encoding scheme")

	// ErrMalformedRecord is returned when a stored master secret cannot be
	// parsed into a [SecretRecord].
	ErrMalformedRecord = errors.New("malformed master secret record")

	// ErrInvalidKey is returned when a sealed encoder is built from a key of
	// the wrong size.
	ErrInvalidKey = errors.New("invalid encoder key")
)
