package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups the storage layer handed to the service layer.
type Storages struct {
	// Blobs holds the vault document and the master secret.
	Blobs BlobStore

	closer func() error
}

// NewStorages initialises the backend selected by cfg.Backend:
//   - "file": one file per blob, no setup needed.
//   - "sqlite": opens (or creates) the database at cfg.DB.DSN and runs
//     pending schema migrations.
func NewStorages(ctx context.Context, cfg config.VaultStorage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	switch cfg.Backend {
	case config.BackendFile:
		return &Storages{
			Blobs: NewFileBlobStore(cfg.Files, log),
		}, nil

	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{
			Blobs:  NewSQLiteBlobStore(db, log),
			closer: db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases backend resources.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
