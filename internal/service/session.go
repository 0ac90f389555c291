// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Session is an unlocked vault. It owns the in-memory document and the
// encoder, and persists the whole document after every mutation.
//
// A Session is not safe for concurrent use.
type Session struct {
	id        string
	store     store.VaultStore
	enc       crypto.Encoder
	doc       *models.VaultDocument
	validator validators.Validator

	logger *logger.Logger
}

func newSession(
	id string,
	vaultStore store.VaultStore,
	enc crypto.Encoder,
	doc *models.VaultDocument,
	validator validators.Validator,
	log *logger.Logger,
) *Session {
	if doc == nil {
		doc = models.NewVaultDocument()
	}

	return &Session{
		id:        id,
		store:     vaultStore,
		enc:       enc,
		doc:       doc,
		validator: validator,
		logger:    log,
	}
}

// ID returns the session identifier used in log entries.
func (s *Session) ID() string {
	return s.id
}

// AddOrUpdate stores the credential for site, replacing an existing entry
// in place. Inputs are trimmed; a blank input fails with [ErrValidation].
// If the document cannot be saved the in-memory change is undone.
func (s *Session) AddOrUpdate(ctx context.Context, site, username, password string) error {
	if s.closed() {
		return ErrSessionClosed
	}

	cred := models.Credential{
		Site:     strings.TrimSpace(site),
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
	}
	if err := s.validator.Validate(ctx, cred); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	prev, existed := s.doc.Get(cred.Site)
	s.doc.Put(cred.Site, models.CredentialEntry{
		Username:        cred.Username,
		EncodedPassword: s.enc.Encode(cred.Password),
	})

	if err := s.store.Save(s.logger.WithContext(ctx), s.doc); err != nil {
		if existed {
			s.doc.Put(cred.Site, prev)
		} else {
			s.doc.Delete(cred.Site)
		}
		s.logger.Err(err).Str("func", "Session.AddOrUpdate").Msg("failed to save vault, change rolled back")
		return err
	}

	s.logger.Info().Str("func", "Session.AddOrUpdate").Bool("replaced", existed).Msg("entry saved")
	return nil
}

// Find returns the decoded credential stored under exactly site.
func (s *Session) Find(ctx context.Context, site string) (models.Credential, error) {
	if s.closed() {
		return models.Credential{}, ErrSessionClosed
	}

	entry, ok := s.doc.Get(site)
	if !ok {
		return models.Credential{}, fmt.Errorf("%w: %q", ErrNotFound, site)
	}

	return s.decode(site, entry), nil
}

// ListAll returns every credential in insertion order.
func (s *Session) ListAll(ctx context.Context) []models.Credential {
	if s.closed() {
		return nil
	}

	sites := s.doc.Sites()
	creds := make([]models.Credential, 0, len(sites))
	for _, site := range sites {
		entry, _ := s.doc.Get(site)
		creds = append(creds, s.decode(site, entry))
	}
	return creds
}

// Delete removes the entry stored under exactly site. Confirmation is the
// caller's job. If the document cannot be saved the entry is restored.
func (s *Session) Delete(ctx context.Context, site string) error {
	if s.closed() {
		return ErrSessionClosed
	}

	before := s.doc.Clone()
	if !s.doc.Delete(site) {
		return fmt.Errorf("%w: %q", ErrNotFound, site)
	}

	if err := s.store.Save(s.logger.WithContext(ctx), s.doc); err != nil {
		s.doc = before
		s.logger.Err(err).Str("func", "Session.Delete").Msg("failed to save vault, deletion rolled back")
		return err
	}

	s.logger.Info().Str("func", "Session.Delete").Msg("entry deleted")
	return nil
}

// Len returns the number of stored entries.
func (s *Session) Len() int {
	if s.closed() {
		return 0
	}
	return s.doc.Len()
}

// Close drops the document and the encoder. Further calls fail with
// [ErrSessionClosed].
func (s *Session) Close() {
	if s.closed() {
		return
	}
	s.doc = nil
	s.enc = nil
	s.logger.Info().Str("func", "Session.Close").Msg("vault session closed")
}

func (s *Session) closed() bool {
	return s.doc == nil
}

func (s *Session) decode(site string, entry models.CredentialEntry) models.Credential {
	return models.Credential{
		Site:     site,
		Username: entry.Username,
		Password: s.enc.Decode(entry.EncodedPassword),
	}
}
