// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// documentIndent is the indentation of the persisted JSON document.
const documentIndent = "    "

// vaultStore persists the document as Encode(JSON) in the vault blob.
type vaultStore struct {
	blobs BlobStore
	enc   crypto.Encoder
}

// NewVaultStore returns a [VaultStore] that reads and writes the vault blob
// of blobs, transforming the whole document with enc.
func NewVaultStore(blobs BlobStore, enc crypto.Encoder) VaultStore {
	return &vaultStore{
		blobs: blobs,
		enc:   enc,
	}
}

// Load implements [VaultStore]. The stored blob is never modified here.
func (v *vaultStore) Load(ctx context.Context) (*models.VaultDocument, error) {
	log := logger.FromContext(ctx)

	raw, err := v.blobs.Read(ctx, BlobVault)
	if errors.Is(err, ErrBlobNotFound) {
		return models.NewVaultDocument(), nil
	}
	if err != nil {
		return models.NewVaultDocument(), fmt.Errorf("%w: load vault: %w", ErrPersistence, err)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.NewVaultDocument(), nil
	}

	decoded := v.enc.Decode(raw)
	if decoded == "" {
		log.Warn().Str("func", "vaultStore.Load").Msg("vault blob could not be decoded")
		return models.NewVaultDocument(), fmt.Errorf("%w: vault blob could not be decoded", ErrCorruptData)
	}

	doc := models.NewVaultDocument()
	if err = json.Unmarshal([]byte(decoded), doc); err != nil {
		log.Warn().Str("func", "vaultStore.Load").Msg("vault blob is not a valid document")
		return models.NewVaultDocument(), fmt.Errorf("%w: %w", ErrCorruptData, err)
	}

	log.Debug().Str("func", "vaultStore.Load").Int("entries", doc.Len()).Msg("vault loaded")
	return doc, nil
}

// Save implements [VaultStore].
func (v *vaultStore) Save(ctx context.Context, doc *models.VaultDocument) error {
	log := logger.FromContext(ctx)

	payload, err := json.MarshalIndent(doc, "", documentIndent)
	if err != nil {
		return fmt.Errorf("%w: encode vault: %w", ErrPersistence, err)
	}

	if err = v.blobs.Write(ctx, BlobVault, v.enc.Encode(string(payload))); err != nil {
		return fmt.Errorf("%w: save vault: %w", ErrPersistence, err)
	}

	log.Debug().Str("func", "vaultStore.Save").Int("entries", doc.Len()).Msg("vault saved")
	return nil
}
