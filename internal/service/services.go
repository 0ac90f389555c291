package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Services is the caller-facing API of the vault.
type Services struct {
	Master    MasterAuthService
	Vault     VaultService
	Generator PasswordGenerator
	AppInfo   AppInfoService

	// PasswordLength is the configured default for Generator.Generate.
	PasswordLength int
}

func NewServices(storages *store.Storages, cfg config.VaultApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	scheme, err := crypto.ParseScheme(cfg.Scheme)
	if err != nil {
		return nil, fmt.Errorf("error parsing scheme: %w", err)
	}

	appInfo, err := NewAppInfoService(buildInfo)
	if err != nil {
		return nil, err
	}

	params := crypto.KDFParams{
		Time:    cfg.KDF.Time,
		Memory:  cfg.KDF.Memory,
		Threads: cfg.KDF.Threads,
	}

	master := NewMasterAuthService(storages.Blobs, crypto.NewKeyChainService(), scheme, params, logger)

	return &Services{
		Master:         master,
		Vault:          NewVaultService(storages.Blobs, master, logger),
		Generator:      utils.NewPasswordGenerator(),
		AppInfo:        appInfo,
		PasswordLength: cfg.PasswordLength,
	}, nil
}
