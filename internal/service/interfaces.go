package service

import (
	"context"

	"github.com/MKhiriev/go-backup-vault/internal/store"
	"github.com/MKhiriev/go-backup-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BackupService accepts uploaded blobs and serves them back.
type BackupService interface {
	// Ingest validates req, streams its body to storage, rebuilds the
	// manifest and returns the account's wipe flag.
	Ingest(ctx context.Context, req models.UploadRequest) (models.UploadResult, error)

	// OpenBackup opens the blob name of account uid for download.
	OpenBackup(ctx context.Context, uid, name string) (*store.BackupFile, error)
}

// AuthService verifies a recovery key and optional username pair.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
}

// WipeService toggles the remote wipe flag of an account.
type WipeService interface {
	SetWipe(ctx context.Context, req models.WipeRequest) (bool, error)
}

// ManifestService reads account manifests.
type ManifestService interface {
	GetManifest(ctx context.Context, uid string) (models.Manifest, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
