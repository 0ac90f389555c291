package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldSite targets the site key of a credential.
	FieldSite = "site"

	// FieldUsername targets the stored login of a credential.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a credential.
	FieldPassword = "password"
)

// CredentialValidator enforces the required-field rules of vault input.
// Whitespace-only values count as empty.
type CredentialValidator struct {
}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	case models.MasterPassword:
		return v.validateMasterPassword(ctx, value)
	case *models.MasterPassword:
		return v.validateMasterPassword(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(ctx context.Context, c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSite, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldSite:
			if isBlank(c.Site) {
				return ErrEmptySite
			}
		case FieldUsername:
			if isBlank(c.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if isBlank(c.Password) {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMasterPassword only rejects the empty string; a master password
// made of spaces is unusual but legal.
func (v *CredentialValidator) validateMasterPassword(ctx context.Context, pw models.MasterPassword) error {
	if pw == "" {
		return ErrEmptyMasterPassword
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
