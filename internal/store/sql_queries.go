// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const blobsTable = "blobs"

// buildReadBlobQuery builds the SELECT for a single blob by name.
func buildReadBlobQuery(name string) (string, []any, error) {
	query, args, err := sq.
		Select("content").
		From(blobsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildWriteBlobQuery builds an upsert that replaces the blob content.
func buildWriteBlobQuery(name, content string) (string, []any, error) {
	query, args, err := sq.
		Insert(blobsTable).
		Columns("name", "content").
		Values(name, content).
		Suffix("ON CONFLICT(name) DO UPDATE SET content = excluded.content, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
