package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySite           = errors.New("site is required")
	ErrEmptyUsername       = errors.New("username is required")
	ErrEmptyPassword       = errors.New("password is required")
	ErrEmptyMasterPassword = errors.New("master password is required")
)
