package service

import (
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// cheapKDF keeps Argon2id fast enough for unit tests.
var cheapKDF = crypto.KDFParams{Time: 1, Memory: 1024, Threads: 1}

type testVault struct {
	dir        string
	vaultFile  string
	masterFile string
	blobs      store.BlobStore
	master     MasterAuthService
	vault      VaultService
}

func newTestVault(t *testing.T, scheme crypto.Scheme) *testVault {
	t.Helper()

	dir := t.TempDir()
	files := config.VaultFiles{
		VaultFile:  filepath.Join(dir, "password_data.txt"),
		MasterFile: filepath.Join(dir, "master_key.txt"),
	}
	blobs := store.NewFileBlobStore(files, logger.Nop())
	master := NewMasterAuthService(blobs, crypto.NewKeyChainService(), scheme, cheapKDF, logger.Nop())

	return &testVault{
		dir:        dir,
		vaultFile:  files.VaultFile,
		masterFile: files.MasterFile,
		blobs:      blobs,
		master:     master,
		vault:      NewVaultService(blobs, master, logger.Nop()),
	}
}
