package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

type vaultService struct {
	blobs  store.BlobStore
	master MasterAuthService
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

func NewVaultService(blobs store.BlobStore, master MasterAuthService, log *logger.Logger) VaultService {
	return &vaultService{
		blobs:  blobs,
		master: master,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}
}

func (v *vaultService) Open(ctx context.Context, masterPassword string) (*Session, error) {
	enc, err := v.master.Unlock(ctx, masterPassword)
	if err != nil {
		return nil, err
	}

	sessionID := v.ids.Generate()
	log := v.logger.WithField("session_id", sessionID)
	ctx = log.WithContext(ctx)

	vaultStore := store.NewVaultStore(v.blobs, enc)
	doc, err := vaultStore.Load(ctx)
	if err != nil && !errors.Is(err, store.ErrCorruptData) {
		log.Err(err).Str("func", "vaultService.Open").Msg("failed to load vault")
		return nil, err
	}

	session := newSession(sessionID, vaultStore, enc, doc, validators.NewCredentialValidator(), log)
	log.Info().Str("func", "vaultService.Open").Int("entries", doc.Len()).Msg("vault session opened")

	// err is nil or ErrCorruptData; the session is usable either way
	return session, err
}
