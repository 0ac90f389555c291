package store

import (
	"context"
	"errors"
	"time"
)

// ErrorClassification tells whether a failed database operation should be
// retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations and I/O failures.
	NonRetryable ErrorClassification = iota

	// Retryable means the operation may succeed if attempted again, e.g. when
	// another process holds the database lock.
	Retryable
)

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SQLiteErrorClassifier implements [ErrorClassificator] for the go-sqlite3
// driver. Without cgo the driver is a stub and every error is [NonRetryable].
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// retryDelays are the pauses between attempts of a retryable operation.
var retryDelays = []time.Duration{
	50 * time.Millisecond,
	150 * time.Millisecond,
	300 * time.Millisecond,
}

// withRetry runs op, repeating it after each of [retryDelays] while the
// classifier reports the error as [Retryable]. The last error is returned.
func withRetry(ctx context.Context, c ErrorClassificator, op func() error) error {
	err := op()
	for _, delay := range retryDelays {
		if err == nil || c.Classify(err) != Retryable {
			return err
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}

		err = op()
	}

	return err
}
