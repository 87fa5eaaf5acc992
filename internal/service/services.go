package service

import (
	"fmt"

	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/store"
	"github.com/MKhiriev/go-backup-vault/models"
)

type Services struct {
	BackupService   BackupService
	AuthService     AuthService
	WipeService     WipeService
	ManifestService ManifestService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		BackupService:   NewBackupService(storages, logger),
		AuthService:     NewAuthService(storages.ManifestStore, logger),
		WipeService:     NewWipeService(storages.ManifestStore, logger),
		ManifestService: NewManifestService(storages.ManifestStore, logger),
		AppInfoService:  appInfo,
	}, nil
}
