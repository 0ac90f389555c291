// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// blobFileMode keeps vault files readable by the owner only.
const blobFileMode fs.FileMode = 0o600

// fileBlobStore stores each blob in its own file.
type fileBlobStore struct {
	paths  map[string]string
	logger *logger.Logger
}

// NewFileBlobStore returns a [BlobStore] that keeps the vault document and
// the master secret in the files named by cfg.
func NewFileBlobStore(cfg config.VaultFiles, log *logger.Logger) BlobStore {
	return &fileBlobStore{
		paths: map[string]string{
			BlobVault:  cfg.VaultFile,
			BlobMaster: cfg.MasterFile,
		},
		logger: log,
	}
}

func (f *fileBlobStore) path(name string) (string, error) {
	p, ok := f.paths[name]
	if !ok || p == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownBlob, name)
	}
	return p, nil
}

// Read implements [BlobStore].
func (f *fileBlobStore) Read(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p, err := f.path(name)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrBlobNotFound
		}
		f.logger.Err(err).Str("func", "fileBlobStore.Read").Str("blob", name).Msg("failed to read blob file")
		return "", fmt.Errorf("read blob %q: %w", name, err)
	}

	return string(data), nil
}

// Write implements [BlobStore]. The content goes to a temporary file in the
// same directory which is synced and then renamed over the target, so a
// crash leaves either the old or the new content.
func (f *fileBlobStore) Write(ctx context.Context, name, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := f.path(name)
	if err != nil {
		return err
	}

	if err = writeFileAtomic(p, []byte(content)); err != nil {
		f.logger.Err(err).Str("func", "fileBlobStore.Write").Str("blob", name).Msg("failed to write blob file")
		return fmt.Errorf("write blob %q: %w", name, err)
	}

	f.logger.Debug().Str("func", "fileBlobStore.Write").Str("blob", name).Int("size", len(content)).Msg("blob written")
	return nil
}

// writeFileAtomic replaces path with data through a synced temp file in the
// same directory. A crash leaves either the old file or a stray temp file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create parent directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if err = tmp.Chmod(blobFileMode); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
