//go:build !cgo

package store

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(error) ErrorClassification {
	return NonRetryable
}
