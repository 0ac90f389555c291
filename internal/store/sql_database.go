package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// DB wraps the sqlite connection used by the sqlite blob backend.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// classifier returns the configured classifier, falling back to
// [SQLiteErrorClassifier].
func (db *DB) classifier() ErrorClassificator {
	if db.errorClassificator == nil {
		return NewSQLiteErrorClassifier()
	}
	return db.errorClassificator
}
