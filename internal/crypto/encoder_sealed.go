// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/tink-crypto/tink-go/v2/daead/subtle"
)

// SealedKeySize is the key length required by the sealed encoder (AES-SIV
// uses two 256-bit halves).
const SealedKeySize = subtle.AESSIVKeySize

// sealedAssociatedData binds every ciphertext to this application so a blob
// sealed elsewhere with the same key does not open here.
var sealedAssociatedData = []byte("go-pass-vault/v1")

// sealedEncoder encrypts with AES-SIV. The construction is deterministic,
// which keeps Encode a pure function of its input as the [Encoder] contract
// requires, and authenticated, so tampered or wrongly-keyed input fails to
// decode.
type sealedEncoder struct {
	siv *subtle.AESSIV
}

// NewSealedEncoder returns an [Encoder] keyed with key, which must be
// [SealedKeySize] bytes long.
func NewSealedEncoder(key []byte) (Encoder, error) {
	if len(key) != SealedKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), SealedKeySize)
	}

	siv, err := subtle.NewAESSIV(key)
	if err != nil {
		return nil, fmt.Errorf("create aes-siv: %w", err)
	}

	return &sealedEncoder{siv: siv}, nil
}

// Encode implements [Encoder]. The output is base64 (standard encoding) of
// the synthetic IV followed by the ciphertext.
func (s *sealedEncoder) Encode(plaintext string) string {
	ct, err := s.siv.EncryptDeterministically([]byte(plaintext), sealedAssociatedData)
	if err != nil {
		// Only reachable for inputs beyond AES-SIV's length limit.
		return ""
	}
	return base64.StdEncoding.EncodeToString(ct)
}

// Decode implements [Encoder].
func (s *sealedEncoder) Decode(encoded string) string {
	ct, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}

	pt, err := s.siv.DecryptDeterministically(ct, sealedAssociatedData)
	if err != nil || !utf8.Valid(pt) {
		return ""
	}
	return string(pt)
}
