// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

// manifestFileStore is the default implementation of [ManifestStore]. Each
// account is a directory below root named after its uid; the manifest is the
// manifest.json file inside it.
type manifestFileStore struct {
	root   string
	locker accountLocker
	now    func() time.Time
	logger *logger.Logger
}

// NewManifestFileStore constructs a [ManifestStore] rooted at cfg.DataDir and
// creates the directory if it does not exist yet.
//
// When cfg.LockAccounts is set, Rebuild and SetWipeStatus calls on the same
// uid are serialized. Otherwise they race and the last write wins.
func NewManifestFileStore(cfg config.Files, logger *logger.Logger) (ManifestStore, error) {
	if err := os.MkdirAll(cfg.DataDir, dirPerm); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}

	return &manifestFileStore{
		root:   cfg.DataDir,
		locker: newAccountLocker(cfg.LockAccounts),
		now:    time.Now,
		logger: logger,
	}, nil
}

func (s *manifestFileStore) Load(ctx context.Context, uid string) (models.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return models.Manifest{}, err
	}

	dir, err := accountDir(s.root, uid)
	if err != nil {
		return models.Manifest{}, err
	}

	return s.load(uid, dir)
}

func (s *manifestFileStore) Rebuild(ctx context.Context, uid, username string) (models.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return models.Manifest{}, err
	}

	dir, err := accountDir(s.root, uid)
	if err != nil {
		return models.Manifest{}, err
	}

	s.locker.Lock(uid)
	defer s.locker.Unlock(uid)

	prior, err := s.load(uid, dir)
	switch {
	case err == nil, errors.Is(err, ErrManifestNotFound):
	case errors.Is(err, ErrMalformedManifest):
		s.logger.Warn().Err(err).Str("uid", utils.ShortUID(uid)).Msg("discarding malformed manifest during rebuild")
		prior = models.Manifest{}
	default:
		return models.Manifest{}, err
	}

	backups, err := listBackups(dir)
	if err != nil {
		return models.Manifest{}, err
	}

	m := models.Manifest{
		SchemaVersion:    models.ManifestSchemaVersion,
		UID:              uid,
		Username:         prior.Username,
		Total:            len(backups),
		RemoteWipeStatus: prior.RemoteWipeStatus,
		Backups:          backups,
		Updated:          s.now().UTC(),
	}
	if supplied := strings.TrimSpace(username); supplied != "" {
		m.Username = supplied
	}
	if len(backups) > 0 {
		m.Latest = backups[len(backups)-1].Name
	}
	for _, b := range backups {
		m.TotalSize += b.Size
	}
	m.TotalSizeHuman = humanize.IBytes(uint64(m.TotalSize))

	if err = s.write(dir, m); err != nil {
		return models.Manifest{}, err
	}

	s.logger.Debug().
		Str("uid", utils.ShortUID(uid)).
		Int("total", m.Total).
		Str("latest", m.Latest).
		Str("size", m.TotalSizeHuman).
		Msg("manifest rebuilt")

	return m, nil
}

func (s *manifestFileStore) SetWipeStatus(ctx context.Context, uid string, status bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	dir, err := accountDir(s.root, uid)
	if err != nil {
		return false, err
	}

	s.locker.Lock(uid)
	defer s.locker.Unlock(uid)

	m, err := s.load(uid, dir)
	if err != nil {
		return false, err
	}

	m.RemoteWipeStatus = status
	if err = s.write(dir, m); err != nil {
		return false, err
	}

	return m.RemoteWipeStatus, nil
}

func (s *manifestFileStore) load(uid, dir string) (models.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if errors.Is(err, os.ErrNotExist) {
		return models.Manifest{}, ErrManifestNotFound
	}
	if err != nil {
		return models.Manifest{}, fmt.Errorf("%w: %w", ErrReadingManifest, err)
	}

	return decodeManifest(uid, data)
}

func (s *manifestFileStore) write(dir string, m models.Manifest) error {
	data, err := encodeManifest(m)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingManifest, err)
	}

	if err = atomicWriteFile(filepath.Join(dir, ManifestFileName), data, filePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingManifest, err)
	}

	return nil
}

// listBackups returns the backup_*.enc files of dir in manifest order.
func listBackups(dir string) ([]models.Backup, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListingBackups, err)
	}

	backups := make([]models.Backup, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if _, ok := backupRawTS(entry.Name()); !ok {
			continue
		}

		info, err := entry.Info()
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrListingBackups, err)
		}

		backups = append(backups, newBackup(entry.Name(), info.Size()))
	}

	sortBackups(backups)
	return backups, nil
}
