// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-backup-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ManifestStore owns the per-account manifest document.
//
// Every method performs a discrete load-then-overwrite cycle on
// <data_dir>/<uid>/manifest.json. Without account locking, concurrent calls on
// the same uid race and the last write wins.
type ManifestStore interface {
	// Load reads the manifest of uid. It returns [ErrManifestNotFound] when
	// the account does not exist and [ErrMalformedManifest] when the document
	// cannot be decoded or violates its invariants.
	Load(ctx context.Context, uid string) (models.Manifest, error)

	// Rebuild recomputes the manifest of uid from the backups present in the
	// account directory and persists it. The prior wipe flag is carried
	// forward; the prior username is kept unless username is non-empty.
	Rebuild(ctx context.Context, uid, username string) (models.Manifest, error)

	// SetWipeStatus overwrites only the wipe flag of an existing manifest and
	// returns the persisted value.
	SetWipeStatus(ctx context.Context, uid string, status bool) (bool, error)
}

// BackupStorage persists and serves opaque backup blobs.
type BackupStorage interface {
	// SaveBackup streams body into <data_dir>/<uid>/<name>, creating the
	// account directory when needed. The blob only becomes visible once it
	// has been fully written; on error nothing is left behind.
	SaveBackup(ctx context.Context, uid, name string, body io.Reader) (int64, error)

	// OpenBackup opens a stored blob for reading.
	OpenBackup(ctx context.Context, uid, name string) (*BackupFile, error)
}

// Mirror copies account files to off-site storage.
type Mirror interface {
	// Replicate uploads the named files of the account directory of uid.
	Replicate(ctx context.Context, uid string, names ...string) error
}
