package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// App owns the storage backend and the services built on it for the
// lifetime of one command.
type App struct {
	cfg      *config.VaultConfig
	storages *store.Storages
	services *service.Services
	logger   *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.VaultConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	services, err := service.NewServices(storages, cfg.App, buildInfo, log)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create services: %w", err), storages.Close())
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		logger:   log,
	}, nil
}

// openSession unlocks the vault. Unlike the terminal UI, scripts never work
// on top of corrupt vault data, so that case is an error here.
func (a *App) openSession(ctx context.Context, masterPassword string) (*service.Session, error) {
	session, err := a.services.Vault.Open(ctx, masterPassword)
	if err != nil {
		if session != nil {
			session.Close()
		}
		return nil, err
	}
	return session, nil
}

// Close releases the storage backend and the log file.
func (a *App) Close() error {
	return errors.Join(a.storages.Close(), a.logger.Close())
}
