// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the random Argon2id salt (128 bits).
const SaltSize = 16

// KDFParams are the Argon2id tuning parameters. They are stored in every
// sealed [SecretRecord], so changing the defaults never locks out an existing
// vault.
type KDFParams struct {
	// Time is the number of passes over memory.
	Time uint32
	// Memory is the memory cost in KiB.
	Memory uint32
	// Threads is the degree of parallelism.
	Threads uint8
}

// DefaultKDFParams returns the Argon2id parameters recommended by OWASP
// (2024): 1 iteration, 64 MiB, 4 lanes.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
	}
}

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	random io.Reader
}

// NewKeyChainService constructs a [KeyChainService] backed by crypto/rand.
func NewKeyChainService() KeyChainService {
	return &keyChainService{random: rand.Reader}
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}
	return salt, nil
}

// DeriveKey implements [KeyChainService]. The derived key is
// [SealedKeySize] bytes and exists only in memory for the session.
func (k *keyChainService) DeriveKey(masterPassword string, salt []byte, params KDFParams) []byte {
	return argon2.IDKey(
		[]byte(masterPassword),
		salt,
		params.Time,
		params.Memory,
		params.Threads,
		SealedKeySize,
	)
}

// NewRecord implements [KeyChainService].
func (k *keyChainService) NewRecord(scheme Scheme, params KDFParams, masterPassword string) (SecretRecord, Encoder, error) {
	record := SecretRecord{Scheme: scheme}

	switch scheme {
	case SchemeBase64:
	case SchemeSealed:
		salt, err := k.GenerateSalt()
		if err != nil {
			return SecretRecord{}, nil, err
		}
		record.Params = params
		record.Salt = salt
	default:
		return SecretRecord{}, nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}

	enc, err := k.OpenRecord(record, masterPassword)
	if err != nil {
		return SecretRecord{}, nil, err
	}

	record.Secret = enc.Encode(masterPassword)
	return record, enc, nil
}

// OpenRecord implements [KeyChainService].
func (k *keyChainService) OpenRecord(record SecretRecord, candidate string) (Encoder, error) {
	switch record.Scheme {
	case SchemeBase64:
		return NewBase64Encoder(), nil
	case SchemeSealed:
		return NewSealedEncoder(k.DeriveKey(candidate, record.Salt, record.Params))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, record.Scheme)
	}
}
