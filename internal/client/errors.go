package client

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

var (
	errPasswordsDoNotMatch = errors.New(app.MsgPasswordsDoNotMatch)
	errPasswordAndGenerate = errors.New("use either --password or --generate, not both")
	errDeleteNotConfirmed  = errors.New("deletion cancelled")
)
