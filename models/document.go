// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrDocumentNotObject is returned by [VaultDocument.UnmarshalJSON] when the
// persisted document is valid JSON but not a JSON object.
var ErrDocumentNotObject = errors.New("vault document is not a JSON object")

// VaultDocument is the ordered mapping of site key to [CredentialEntry].
//
// Site keys are used verbatim (case-sensitive, no normalization) and each key
// holds at most one entry. Iteration follows insertion order; overwriting an
// existing key keeps its original position. The JSON form is an object whose
// member order is the insertion order, so ordering survives a save/load cycle.
//
// A VaultDocument is not safe for concurrent use.
type VaultDocument struct {
	entries *orderedmap.OrderedMap[string, CredentialEntry]
}

// NewVaultDocument returns an empty document.
func NewVaultDocument() *VaultDocument {
	return &VaultDocument{
		entries: orderedmap.New[string, CredentialEntry](),
	}
}

// Put inserts or replaces the entry stored under site.
func (d *VaultDocument) Put(site string, entry CredentialEntry) {
	d.entries.Set(site, entry)
}

// Get returns the entry stored under site.
func (d *VaultDocument) Get(site string) (CredentialEntry, bool) {
	return d.entries.Get(site)
}

// Delete removes site and reports whether it was present.
func (d *VaultDocument) Delete(site string) bool {
	_, present := d.entries.Delete(site)
	return present
}

// Len returns the number of entries.
func (d *VaultDocument) Len() int {
	return d.entries.Len()
}

// Sites returns the site keys in insertion order.
func (d *VaultDocument) Sites() []string {
	sites := make([]string, 0, d.entries.Len())
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		sites = append(sites, pair.Key)
	}
	return sites
}

// Clone returns a copy of the document that shares no state with d.
func (d *VaultDocument) Clone() *VaultDocument {
	clone := &VaultDocument{
		entries: orderedmap.New[string, CredentialEntry](d.entries.Len()),
	}
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		clone.entries.Set(pair.Key, pair.Value)
	}
	return clone
}

// MarshalJSON encodes the document as a JSON object in insertion order.
func (d *VaultDocument) MarshalJSON() ([]byte, error) {
	return d.entries.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object into the document, preserving member
// order. Anything other than an object of entry objects is rejected,
// including the JSON literal null. Repeated keys keep the position of the
// first occurrence and the value of the last.
func (d *VaultDocument) UnmarshalJSON(data []byte) error {
	if !json.Valid(data) {
		return errors.New("vault document is not valid JSON")
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrDocumentNotObject
	}

	entries := orderedmap.New[string, CredentialEntry]()
	if err := entries.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("decode vault document: %w", err)
	}

	d.entries = entries
	return nil
}
