// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Character classes of generated passwords. Punctuation is the full set of
// printable ASCII punctuation.
const (
	Letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Length bounds of generated passwords. MinPasswordLength fits one character
// of each class.
const (
	MinPasswordLength = 3
	MaxPasswordLength = 4096
)

// ErrPasswordTooShort is returned by [PasswordGenerator.Generate] when the
// requested length cannot hold one character of every class.
var ErrPasswordTooShort = errors.New("password length must be at least 3")

// ErrPasswordTooLong is returned by [PasswordGenerator.Generate] for lengths
// above [MaxPasswordLength].
var ErrPasswordTooLong = errors.New("password length must be at most 4096")

var passwordClasses = []string{Letters, Digits, Punctuation}

// PasswordGenerator draws random passwords from the OS CSPRNG.
type PasswordGenerator struct {
	random io.Reader
}

func NewPasswordGenerator() *PasswordGenerator {
	return &PasswordGenerator{random: rand.Reader}
}

// Generate returns a password of exactly length characters containing at
// least one letter, one digit and one punctuation character. Each position
// is uniform over its alphabet and the result is shuffled, so the guaranteed
// characters do not sit at fixed positions.
func (g *PasswordGenerator) Generate(length int) (string, error) {
	if length < MinPasswordLength {
		return "", fmt.Errorf("%w: got %d", ErrPasswordTooShort, length)
	}
	if length > MaxPasswordLength {
		return "", fmt.Errorf("%w: got %d", ErrPasswordTooLong, length)
	}

	password := make([]byte, 0, length)
	for _, class := range passwordClasses {
		ch, err := g.pick(class)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	all := Letters + Digits + Punctuation
	for len(password) < length {
		ch, err := g.pick(all)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	if err := g.shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

func (g *PasswordGenerator) pick(set string) (byte, error) {
	idx, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}

// shuffle is a Fisher-Yates shuffle.
func (g *PasswordGenerator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

func (g *PasswordGenerator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random index: %w", err)
	}
	return int(v.Int64()), nil
}
