// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type masterAuthService struct {
	blobs     store.BlobStore
	keyChain  crypto.KeyChainService
	scheme    crypto.Scheme
	params    crypto.KDFParams
	validator validators.Validator

	logger *logger.Logger
}

// NewMasterAuthService returns a [MasterAuthService] storing the master
// secret in blobs. scheme and params apply to new secrets only; an existing
// secret is always opened with the scheme recorded in it.
func NewMasterAuthService(
	blobs store.BlobStore,
	keyChain crypto.KeyChainService,
	scheme crypto.Scheme,
	params crypto.KDFParams,
	log *logger.Logger,
) MasterAuthService {
	return &masterAuthService{
		blobs:     blobs,
		keyChain:  keyChain,
		scheme:    scheme,
		params:    params,
		validator: validators.NewCredentialValidator(),
		logger:    log,
	}
}

func (m *masterAuthService) IsInitialized(ctx context.Context) (bool, error) {
	raw, err := m.blobs.Read(ctx, store.BlobMaster)
	if errors.Is(err, store.ErrBlobNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: read master secret: %w", store.ErrPersistence, err)
	}

	return strings.TrimSpace(raw) != "", nil
}

func (m *masterAuthService) Setup(ctx context.Context, password string) error {
	if err := m.validator.Validate(ctx, models.MasterPassword(password)); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	record, _, err := m.keyChain.NewRecord(m.scheme, m.params, password)
	if err != nil {
		m.logger.Err(err).Str("func", "masterAuthService.Setup").Msg("failed to create master secret")
		return fmt.Errorf("create master secret: %w", err)
	}

	if err = m.blobs.Write(ctx, store.BlobMaster, record.String()); err != nil {
		return fmt.Errorf("%w: write master secret: %w", store.ErrPersistence, err)
	}

	m.logger.Info().Str("func", "masterAuthService.Setup").Str("scheme", string(record.Scheme)).Msg("master password set")
	return nil
}

func (m *masterAuthService) Verify(ctx context.Context, candidate string) bool {
	_, err := m.Unlock(ctx, candidate)
	return err == nil
}

func (m *masterAuthService) Unlock(ctx context.Context, candidate string) (crypto.Encoder, error) {
	raw, err := m.blobs.Read(ctx, store.BlobMaster)
	if errors.Is(err, store.ErrBlobNotFound) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read master secret: %w", store.ErrPersistence, err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, ErrNotInitialized
	}

	record, err := crypto.ParseSecretRecord(raw)
	if err != nil {
		m.logger.Err(err).Str("func", "masterAuthService.Unlock").Msg("master secret is unreadable")
		return nil, fmt.Errorf("%w: master secret: %w", store.ErrCorruptData, err)
	}

	if candidate == "" {
		return nil, ErrAuthFailed
	}

	enc, err := m.keyChain.OpenRecord(record, candidate)
	if err != nil {
		return nil, fmt.Errorf("open master secret: %w", err)
	}

	stored := enc.Decode(record.Secret)
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) != 1 {
		m.logger.Warn().Str("func", "masterAuthService.Unlock").Msg("master password mismatch")
		return nil, ErrAuthFailed
	}

	return enc, nil
}
