package store

import "errors"

// Sentinel errors returned by the storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBlobNotFound is returned by [BlobStore.Read] when the named blob
	// has never been written.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrUnknownBlob is returned when a blob name has no storage location
	// configured.
	ErrUnknownBlob = errors.New("unknown blob")

	// ErrCorruptData is returned by [VaultStore.Load] when the persisted
	// document exists but cannot be decoded or parsed.
	ErrCorruptData = errors.New("vault data is corrupt")

	// ErrPersistence is returned when reading or writing durable storage
	// fails.
	ErrPersistence = errors.New("persistence failure")

	// ErrUnknownBackend is returned by [NewStorages] for an unsupported
	// backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors, wrapped by the sqlite backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT/UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
