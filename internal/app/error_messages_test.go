package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

func TestMessageFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"auth failed", service.ErrAuthFailed, MsgAuthFailed},
		{"wrapped not found", fmt.Errorf("%w: %q", service.ErrNotFound, "x.com"), MsgNotFound},
		{"not initialized", service.ErrNotInitialized, MsgNotInitialized},
		{"specific validator wins", fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrEmptyUsername), MsgEmptyUsername},
		{"empty master password", fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrEmptyMasterPassword), MsgEmptyMasterPassword},
		{"bare validation", service.ErrValidation, MsgFieldsRequired},
		{"corrupt before persistence", fmt.Errorf("%w: master secret: %w", store.ErrCorruptData, errors.New("bad")), MsgCorruptData},
		{"persistence", fmt.Errorf("%w: save vault: %w", store.ErrPersistence, errors.New("disk full")), MsgPersistence},
		{"too short", utils.ErrPasswordTooShort, MsgPasswordTooShort},
		{"too long", fmt.Errorf("%w: got 5000", utils.ErrPasswordTooLong), MsgPasswordTooLong},
		{"config", fmt.Errorf("wrap: %w", config.ErrInvalidStorageConfigs), MsgInvalidConfig},
		{"unknown", errors.New("boom"), MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageFor(tt.err))
		})
	}
}
