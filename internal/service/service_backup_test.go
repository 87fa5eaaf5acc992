package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/mock"
	"github.com/MKhiriev/go-backup-vault/internal/store"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

type backupMocks struct {
	backups   *mock.MockBackupStorage
	manifests *mock.MockManifestStore
	mirror    *mock.MockMirror
}

func newTestBackupService(ctrl *gomock.Controller) (*backupService, backupMocks) {
	m := backupMocks{
		backups:   mock.NewMockBackupStorage(ctrl),
		manifests: mock.NewMockManifestStore(ctrl),
		mirror:    mock.NewMockMirror(ctrl),
	}

	svc := NewBackupService(&store.Storages{
		ManifestStore: m.manifests,
		BackupStorage: m.backups,
		Mirror:        m.mirror,
	}, logger.Nop()).(*backupService)

	return svc, m
}

func TestBackupService_Ingest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestBackupService(ctrl)
	uid := utils.DeriveUID(testRecoveryKey)
	name := "backup_1700000000000.enc"
	backup := models.Backup{Name: name, RawTS: "1700000000000", Size: 5}

	gomock.InOrder(
		m.backups.EXPECT().SaveBackup(gomock.Any(), uid, name, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, body io.Reader) (int64, error) {
				data, err := io.ReadAll(body)
				require.NoError(t, err)
				assert.Equal(t, "hello", string(data))
				return int64(len(data)), nil
			}),
		m.manifests.EXPECT().Rebuild(gomock.Any(), uid, "alice").
			Return(models.Manifest{UID: uid, Total: 1, Backups: []models.Backup{backup}, RemoteWipeStatus: true}, nil),
		m.mirror.EXPECT().Replicate(gomock.Any(), uid, name, store.ManifestFileName).Return(nil),
	)

	result, err := svc.Ingest(context.Background(), models.UploadRequest{
		UID:       uid,
		Username:  "alice",
		Timestamp: "1700000000000",
		Body:      strings.NewReader("hello"),
	})

	require.NoError(t, err)
	assert.Equal(t, backup, result.Backup)
	assert.True(t, result.RemoteWipeStatus)
}

func TestBackupService_Ingest_DefaultsTimestampToNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestBackupService(ctrl)
	svc.now = func() time.Time { return time.UnixMilli(1234567890123) }
	uid := utils.DeriveUID(testRecoveryKey)
	name := "backup_1234567890123.enc"

	m.backups.EXPECT().SaveBackup(gomock.Any(), uid, name, gomock.Any()).Return(int64(3), nil)
	m.manifests.EXPECT().Rebuild(gomock.Any(), uid, "").Return(models.Manifest{UID: uid}, nil)
	m.mirror.EXPECT().Replicate(gomock.Any(), uid, name, store.ManifestFileName).Return(nil)

	result, err := svc.Ingest(context.Background(), models.UploadRequest{UID: uid, Body: strings.NewReader("abc")})

	require.NoError(t, err)
	assert.Equal(t, name, result.Backup.Name)
	assert.Equal(t, int64(3), result.Backup.Size)
	assert.False(t, result.RemoteWipeStatus)
}

func TestBackupService_Ingest_ValidationStopsBeforeStorage(t *testing.T) {
	uid := utils.DeriveUID(testRecoveryKey)

	tests := []struct {
		name    string
		req     models.UploadRequest
		wantErr error
	}{
		{name: "missing uid", req: models.UploadRequest{Timestamp: "1"}, wantErr: ErrInvalidUID},
		{name: "short uid", req: models.UploadRequest{UID: "abc", Timestamp: "1"}, wantErr: ErrInvalidUID},
		{name: "traversal uid", req: models.UploadRequest{UID: "../" + uid[3:], Timestamp: "1"}, wantErr: ErrInvalidUID},
		{name: "non-digit timestamp", req: models.UploadRequest{UID: uid, Timestamp: "12a"}, wantErr: ErrInvalidTimestamp},
		{name: "negative timestamp", req: models.UploadRequest{UID: uid, Timestamp: "-5"}, wantErr: ErrInvalidTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _ := newTestBackupService(ctrl)
			tt.req.Body = strings.NewReader("x")

			_, err := svc.Ingest(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBackupService_Ingest_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestBackupService(ctrl)
	uid := utils.DeriveUID(testRecoveryKey)
	diskErr := errors.New("disk full")

	m.backups.EXPECT().SaveBackup(gomock.Any(), uid, gomock.Any(), gomock.Any()).Return(int64(0), diskErr)

	_, err := svc.Ingest(context.Background(), models.UploadRequest{UID: uid, Timestamp: "1", Body: strings.NewReader("x")})

	assert.ErrorIs(t, err, ErrBackupNotSaved)
	assert.ErrorIs(t, err, diskErr)
}

func TestBackupService_Ingest_RebuildFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestBackupService(ctrl)
	uid := utils.DeriveUID(testRecoveryKey)

	m.backups.EXPECT().SaveBackup(gomock.Any(), uid, gomock.Any(), gomock.Any()).Return(int64(1), nil)
	m.manifests.EXPECT().Rebuild(gomock.Any(), uid, "").Return(models.Manifest{}, store.ErrWritingManifest)

	_, err := svc.Ingest(context.Background(), models.UploadRequest{UID: uid, Timestamp: "1", Body: strings.NewReader("x")})

	assert.ErrorIs(t, err, ErrManifestNotUpdated)
	assert.ErrorIs(t, err, store.ErrWritingManifest)
}

func TestBackupService_Ingest_MirrorFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestBackupService(ctrl)
	uid := utils.DeriveUID(testRecoveryKey)

	m.backups.EXPECT().SaveBackup(gomock.Any(), uid, gomock.Any(), gomock.Any()).Return(int64(1), nil)
	m.manifests.EXPECT().Rebuild(gomock.Any(), uid, "").Return(models.Manifest{UID: uid}, nil)
	m.mirror.EXPECT().Replicate(gomock.Any(), uid, gomock.Any(), gomock.Any()).Return(store.ErrMirroring)

	result, err := svc.Ingest(context.Background(), models.UploadRequest{UID: uid, Timestamp: "1", Body: strings.NewReader("x")})

	require.NoError(t, err)
	assert.Equal(t, "backup_1.enc", result.Backup.Name)
}

func TestBackupService_OpenBackup_ValidatesUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestBackupService(ctrl)

	_, err := svc.OpenBackup(context.Background(), "nope", "backup_1.enc")
	assert.ErrorIs(t, err, ErrInvalidUID)
}

func TestBackupService_OpenBackup_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestBackupService(ctrl)
	uid := utils.DeriveUID(testRecoveryKey)

	m.backups.EXPECT().OpenBackup(gomock.Any(), uid, "backup_1.enc").Return(nil, store.ErrBackupNotFound)

	_, err := svc.OpenBackup(context.Background(), uid, "backup_1.enc")
	assert.ErrorIs(t, err, store.ErrBackupNotFound)
}

// TestServices_EndToEnd runs the upload, login, wipe and manifest flow
// against the real file storage.
func TestServices_EndToEnd(t *testing.T) {
	ctx := context.Background()
	storages, err := store.NewStorages(ctx, config.Storage{
		Files: config.Files{DataDir: filepath.Join(t.TempDir(), "data"), LockAccounts: true},
	}, logger.Nop())
	require.NoError(t, err)

	services, err := NewServices(storages, config.StructuredConfig{App: config.App{Version: "test"}}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	uid := utils.DeriveUID(testRecoveryKey)

	_, err = services.AuthService.Login(ctx, models.LoginRequest{Username: "alice", RecoveryKey: testRecoveryKey})
	require.ErrorIs(t, err, ErrAccountNotFound)

	for _, ts := range []string{"9", "10"} {
		result, err := services.BackupService.Ingest(ctx, models.UploadRequest{
			UID:       uid,
			Username:  "Alice",
			Timestamp: ts,
			Body:      strings.NewReader("blob-" + ts),
		})
		require.NoError(t, err)
		assert.False(t, result.RemoteWipeStatus)
	}

	login, err := services.AuthService.Login(ctx, models.LoginRequest{Username: "alice", RecoveryKey: testRecoveryKey})
	require.NoError(t, err)
	assert.Equal(t, uid, login.UID)
	assert.Equal(t, 2, login.Manifest.Total)
	assert.Equal(t, "backup_10.enc", login.Manifest.Latest)

	status, err := services.WipeService.SetWipe(ctx, models.WipeRequest{UID: uid, Status: true})
	require.NoError(t, err)
	assert.True(t, status)

	result, err := services.BackupService.Ingest(ctx, models.UploadRequest{UID: uid, Timestamp: "11", Body: strings.NewReader("x")})
	require.NoError(t, err)
	assert.True(t, result.RemoteWipeStatus)

	manifest, err := services.ManifestService.GetManifest(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 3, manifest.Total)
	assert.Equal(t, "Alice", manifest.Username)
	assert.True(t, manifest.RemoteWipeStatus)

	f, err := services.BackupService.OpenBackup(ctx, uid, "backup_9.enc")
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "blob-9", string(data))

	assert.Equal(t, "test", services.AppInfoService.GetAppVersion(ctx))
}
