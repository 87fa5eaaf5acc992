// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/store"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/internal/validators"
	"github.com/MKhiriev/go-backup-vault/models"
)

// backupService is the default implementation of [BackupService].
type backupService struct {
	backups   store.BackupStorage
	manifests store.ManifestStore
	mirror    store.Mirror
	validator validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

// NewBackupService builds a [BackupService] on top of the given storages.
func NewBackupService(storages *store.Storages, logger *logger.Logger) BackupService {
	mirror := storages.Mirror
	if mirror == nil {
		mirror = store.NewNoopMirror()
	}

	return &backupService{
		backups:   storages.BackupStorage,
		manifests: storages.ManifestStore,
		mirror:    mirror,
		validator: validators.NewRequestValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Ingest stores one uploaded blob.
//
// The uid is validated before anything touches the filesystem. An omitted
// timestamp defaults to the current time in epoch milliseconds; a supplied
// one must consist of digits only. After the blob is written the manifest is
// rebuilt and the account's wipe flag is returned. A failed rebuild leaves
// the blob on disk; the next successful rebuild lists it.
//
// Mirroring to off-site storage is best effort: failures are logged and do
// not fail the upload.
func (s *backupService) Ingest(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	if req.Timestamp == "" {
		req.Timestamp = strconv.FormatInt(s.now().UnixMilli(), 10)
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("uid", utils.ShortUID(req.UID)).Msg("invalid upload request")
		return models.UploadResult{}, err
	}

	name := store.BackupFileName(req.Timestamp)
	log = log.Fields("uid", utils.ShortUID(req.UID), "backup", name)

	size, err := s.backups.SaveBackup(ctx, req.UID, name, req.Body)
	if err != nil {
		log.Err(err).Int64("written", size).Msg("backup write failed")
		return models.UploadResult{}, fmt.Errorf("%w: %w", ErrBackupNotSaved, err)
	}

	manifest, err := s.manifests.Rebuild(ctx, req.UID, req.Username)
	if err != nil {
		log.Err(err).Msg("manifest rebuild failed after backup write")
		return models.UploadResult{}, fmt.Errorf("%w: %w", ErrManifestNotUpdated, err)
	}

	if err = s.mirror.Replicate(ctx, req.UID, name, store.ManifestFileName); err != nil {
		log.Warn().Err(err).Msg("backup mirroring failed")
	}

	log.Info().
		Str("size", humanize.IBytes(uint64(size))).
		Int("total", manifest.Total).
		Bool("remote_wipe_status", manifest.RemoteWipeStatus).
		Msg("backup stored")

	return models.UploadResult{
		Backup:           findBackup(manifest, name, size),
		RemoteWipeStatus: manifest.RemoteWipeStatus,
	}, nil
}

// OpenBackup validates uid and opens the named blob.
func (s *backupService) OpenBackup(ctx context.Context, uid, name string) (*store.BackupFile, error) {
	if err := s.validator.Validate(ctx, uid); err != nil {
		return nil, err
	}

	return s.backups.OpenBackup(ctx, uid, name)
}

func findBackup(m models.Manifest, name string, size int64) models.Backup {
	for _, b := range m.Backups {
		if b.Name == name {
			return b
		}
	}

	return models.Backup{Name: name, Size: size}
}
