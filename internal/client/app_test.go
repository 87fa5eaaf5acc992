package client

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-backup-vault/internal/adapter"
	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/crypto"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/mock"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

const testKey = "correct horse battery staple"

func newTestApp(t *testing.T) (*App, *mock.MockVaultAdapter, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultAdapter(ctrl)
	out := &bytes.Buffer{}

	app := NewApp(vault, crypto.NewSealer(), config.ClientConfig{PollInterval: 5 * time.Millisecond}, out, logger.Nop())
	return app, vault, out
}

func TestApp_UID(t *testing.T) {
	app, _, out := newTestApp(t)

	require.NoError(t, app.UID(testKey))
	assert.Equal(t, utils.DeriveUID(testKey)+"\n", out.String())

	assert.ErrorIs(t, app.UID(""), ErrEmptyRecoveryKey)
}

func TestApp_Login(t *testing.T) {
	app, vault, out := newTestApp(t)
	uid := utils.DeriveUID(testKey)

	vault.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Username: "alice", RecoveryKey: testKey}).
		Return(models.LoginResponse{
			OK:  true,
			UID: uid,
			Manifest: models.Manifest{
				UID:       uid,
				Username:  "alice",
				Total:     1,
				TotalSize: 2048,
				Backups: []models.Backup{
					{Name: "backup_1700000000000.enc", Timestamp: "2023-11-14 22:13:20", Size: 2048},
				},
			},
		}, nil)

	require.NoError(t, app.Login(context.Background(), "alice", testKey))

	got := out.String()
	assert.Contains(t, got, "uid: "+uid)
	assert.Contains(t, got, "username: alice")
	assert.Contains(t, got, "backups: 1 (2.0 KiB)")
	assert.Contains(t, got, "remote wipe: OFF")
	assert.Contains(t, got, "backup_1700000000000.enc")
}

func TestApp_Login_Error(t *testing.T) {
	app, vault, _ := newTestApp(t)

	vault.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{}, adapter.ErrUnauthorized)

	err := app.Login(context.Background(), "bob", testKey)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestApp_Manifest_NoBackups(t *testing.T) {
	app, vault, out := newTestApp(t)

	vault.EXPECT().GetManifest(gomock.Any(), "uid").Return(models.Manifest{RemoteWipeStatus: true}, nil)

	require.NoError(t, app.Manifest(context.Background(), "uid"))
	assert.Contains(t, out.String(), "username: (not set)")
	assert.Contains(t, out.String(), "remote wipe: ON")
	assert.NotContains(t, out.String(), "NAME")
}

func TestApp_Upload_File(t *testing.T) {
	app, vault, out := newTestApp(t)

	path := filepath.Join(t.TempDir(), "blob.enc")
	require.NoError(t, os.WriteFile(path, []byte("ciphertext"), 0o600))

	vault.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UploadRequest) (models.UploadResponse, error) {
			assert.Equal(t, "uid", req.UID)
			assert.Equal(t, "alice", req.Username)
			assert.Empty(t, req.Timestamp)

			buf := new(bytes.Buffer)
			_, err := buf.ReadFrom(req.Body)
			assert.NoError(t, err)
			assert.Equal(t, "ciphertext", buf.String())

			return models.UploadResponse{OK: true, RemoteWipeStatus: true}, nil
		})

	err := app.Upload(context.Background(), UploadOptions{UID: "uid", Path: path, Username: "alice"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "upload ok")
	assert.Contains(t, out.String(), "remote wipe: ON")
}

func TestApp_Upload_Stdin(t *testing.T) {
	app, vault, _ := newTestApp(t)
	app.stdin = strings.NewReader("from stdin")

	vault.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UploadRequest) (models.UploadResponse, error) {
			buf := new(bytes.Buffer)
			_, _ = buf.ReadFrom(req.Body)
			assert.Equal(t, "from stdin", buf.String())
			return models.UploadResponse{OK: true}, nil
		})

	require.NoError(t, app.Upload(context.Background(), UploadOptions{UID: "uid", Path: "-"}))
}

func TestApp_Upload_MissingFile(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Upload(context.Background(), UploadOptions{UID: "uid", Path: filepath.Join(t.TempDir(), "nope")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApp_Wipe(t *testing.T) {
	app, vault, out := newTestApp(t)

	vault.EXPECT().SetWipe(gomock.Any(), "uid", true).Return(true, nil)

	require.NoError(t, app.Wipe(context.Background(), "uid", true))
	assert.Equal(t, "remote wipe: ON\n", out.String())
}

func TestApp_Watch(t *testing.T) {
	app, vault, out := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	vault.EXPECT().
		GetManifest(gomock.Any(), "uid").
		DoAndReturn(func(context.Context, string) (models.Manifest, error) {
			cancel()
			return models.Manifest{RemoteWipeStatus: true}, nil
		})

	require.NoError(t, app.Watch(ctx, "uid"))
	assert.Empty(t, out.String())
}

func TestApp_HealthAndVersion(t *testing.T) {
	app, vault, out := newTestApp(t)

	vault.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{OK: true, Status: "Server is running", Timestamp: "2026-01-01T00:00:00.000Z"}, nil)
	vault.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{OK: true, Version: "1.0.0", BuildDate: "today", BuildCommit: "abc"}, nil)

	require.NoError(t, app.Health(context.Background()))
	require.NoError(t, app.Version(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Server is running (2026-01-01T00:00:00.000Z)")
	assert.Contains(t, got, "Server version: 1.0.0")
	assert.Contains(t, got, "Server build commit: abc")
}

func TestApp_UploadEncryptedThenDownloadDecrypted(t *testing.T) {
	app, vault, out := newTestApp(t)
	uid := utils.DeriveUID(testKey)

	src := filepath.Join(t.TempDir(), "plain.db")
	require.NoError(t, os.WriteFile(src, []byte("sms history"), 0o600))

	var stored []byte
	vault.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UploadRequest) (models.UploadResponse, error) {
			buf := new(bytes.Buffer)
			_, err := buf.ReadFrom(req.Body)
			assert.NoError(t, err)
			stored = buf.Bytes()
			assert.NotContains(t, string(stored), "sms history")
			return models.UploadResponse{OK: true}, nil
		})
	vault.EXPECT().
		GetManifest(gomock.Any(), uid).
		Return(models.Manifest{UID: uid, Latest: "backup_1700000000000.enc"}, nil)
	vault.EXPECT().
		Download(gomock.Any(), uid, "backup_1700000000000.enc", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, w io.Writer) (int64, error) {
			n, err := w.Write(stored)
			return int64(n), err
		})

	require.NoError(t, app.Upload(context.Background(), UploadOptions{UID: uid, Path: src, Encrypt: true, Passphrase: testKey}))

	dst := filepath.Join(t.TempDir(), "restored.db")
	require.NoError(t, app.Download(context.Background(), DownloadOptions{UID: uid, Name: "latest", Path: dst, Decrypt: true, Passphrase: testKey}))

	restored, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "sms history", string(restored))
	assert.Contains(t, out.String(), "saved backup_1700000000000.enc to "+dst)
}

func TestApp_Download_ToStdout(t *testing.T) {
	app, vault, out := newTestApp(t)

	vault.EXPECT().
		Download(gomock.Any(), "uid", "backup_1.enc", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, w io.Writer) (int64, error) {
			n, err := w.Write([]byte("raw"))
			return int64(n), err
		})

	require.NoError(t, app.Download(context.Background(), DownloadOptions{UID: "uid", Name: "backup_1.enc", Path: "-"}))
	assert.Equal(t, "raw", out.String())
}

func TestApp_Download_LatestWithoutBackups(t *testing.T) {
	app, vault, _ := newTestApp(t)

	vault.EXPECT().GetManifest(gomock.Any(), "uid").Return(models.Manifest{}, nil)

	err := app.Download(context.Background(), DownloadOptions{UID: "uid", Name: "latest", Path: "-"})
	assert.ErrorIs(t, err, ErrNoBackups)
}

func TestApp_Download_WrongPassphrase(t *testing.T) {
	app, vault, _ := newTestApp(t)

	sealed, err := crypto.NewSealer().Seal([]byte("secret"), "right")
	require.NoError(t, err)

	vault.EXPECT().
		Download(gomock.Any(), "uid", "backup_1.enc", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, w io.Writer) (int64, error) {
			n, err := w.Write(sealed)
			return int64(n), err
		})

	err = app.Download(context.Background(), DownloadOptions{UID: "uid", Name: "backup_1.enc", Path: "-", Decrypt: true, Passphrase: "wrong"})
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}
