package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
)

// Storages groups the storage components injected into the service layer.
type Storages struct {
	ManifestStore ManifestStore
	BackupStorage BackupStorage
	Mirror        Mirror
}

// NewStorages builds every storage component from cfg. The mirror is a no-op
// unless an S3 bucket is configured.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Str("data_dir", cfg.Files.DataDir).Bool("lock_accounts", cfg.Files.LockAccounts).Msg("creating storages")

	manifests, err := NewManifestFileStore(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating manifest store: %w", err)
	}

	mirror := NewNoopMirror()
	if cfg.Mirror.S3.Enabled() {
		mirror, err = NewS3Mirror(ctx, cfg.Files.DataDir, cfg.Mirror.S3, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating s3 mirror: %w", err)
		}
	}

	return &Storages{
		ManifestStore: manifests,
		BackupStorage: NewBackupFileStorage(cfg.Files, logger),
		Mirror:        mirror,
	}, nil
}
