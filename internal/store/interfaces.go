package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Blob names used by the vault.
const (
	// BlobVault holds the encoded vault document.
	BlobVault = "vault"
	// BlobMaster holds the master secret record.
	BlobMaster = "master"
)

// BlobStore persists named text blobs. Each blob is replaced as a whole:
// after a successful Write, Read returns exactly the written content.
type BlobStore interface {
	// Read returns the content of the named blob, or [ErrBlobNotFound] if it
	// was never written.
	Read(ctx context.Context, name string) (string, error)
	// Write replaces the content of the named blob.
	Write(ctx context.Context, name, content string) error
}

// VaultStore loads and saves the whole vault document.
type VaultStore interface {
	// Load returns the persisted document. A missing or empty blob yields an
	// empty document and nil. An undecodable blob yields an empty document
	// and [ErrCorruptData]; a read failure yields an empty document and
	// [ErrPersistence].
	Load(ctx context.Context) (*models.VaultDocument, error)
	// Save replaces the persisted document with doc. Errors wrap
	// [ErrPersistence].
	Save(ctx context.Context, doc *models.VaultDocument) error
}
