//go:build cgo

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// Classify implements [ErrorClassificator]. Errors that are not sqlite3.Error
// values are [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	return NonRetryable
}

// ClassifySQLiteError maps a sqlite3.Error to an [ErrorClassification] based
// on its primary result code.
//
// Retryable codes: SQLITE_BUSY, SQLITE_LOCKED.
// Everything else, including SQLITE_CONSTRAINT, SQLITE_CORRUPT and
// SQLITE_FULL, is [NonRetryable].
func ClassifySQLiteError(sqliteErr sqlite3.Error) ErrorClassification {
	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}
