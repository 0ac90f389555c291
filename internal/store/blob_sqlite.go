package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// sqliteBlobStore keeps one row per blob in the blobs table.
type sqliteBlobStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteBlobStore returns a [BlobStore] backed by db. The schema must be
// migrated beforehand.
func NewSQLiteBlobStore(db *DB, log *logger.Logger) BlobStore {
	return &sqliteBlobStore{
		DB:     db,
		logger: log,
	}
}

// Read implements [BlobStore].
func (s *sqliteBlobStore) Read(ctx context.Context, name string) (string, error) {
	query, args, err := buildReadBlobQuery(name)
	if err != nil {
		return "", err
	}

	var content string
	err = withRetry(ctx, s.classifier(), func() error {
		return s.DB.QueryRowContext(ctx, query, args...).Scan(&content)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrBlobNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteBlobStore.Read").
			Str("blob", name).
			Msg("failed to query blob")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return content, nil
}

// Write implements [BlobStore].
func (s *sqliteBlobStore) Write(ctx context.Context, name, content string) error {
	query, args, err := buildWriteBlobQuery(name, content)
	if err != nil {
		return err
	}

	err = withRetry(ctx, s.classifier(), func() error {
		_, execErr := s.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteBlobStore.Write").
			Str("blob", name).
			Msg("failed to upsert blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	s.logger.Debug().
		Str("func", "sqliteBlobStore.Write").
		Str("blob", name).
		Int("size", len(content)).
		Msg("blob written")
	return nil
}
