// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the vault: the
// three credential fields and the master password.
package validators

import "context"

// Validator checks a value. When fields are given only those fields of the
// value are checked; otherwise every rule applies.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
