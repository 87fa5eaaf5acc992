package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/mock"
	"github.com/MKhiriev/go-backup-vault/internal/store"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

func TestManifestService_GetManifest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uid := utils.DeriveUID(testRecoveryKey)
	stored := models.Manifest{SchemaVersion: 1, UID: uid, RemoteWipeStatus: true}

	manifests := mock.NewMockManifestStore(ctrl)
	manifests.EXPECT().Load(gomock.Any(), uid).Return(stored, nil)

	got, err := NewManifestService(manifests, logger.Nop()).GetManifest(context.Background(), uid)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestManifestService_GetManifest_InvalidUID_DoesNotTouchStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manifests := mock.NewMockManifestStore(ctrl)
	svc := NewManifestService(manifests, logger.Nop())

	for _, uid := range []string{"", "short", "../" + utils.DeriveUID("x")[3:]} {
		_, err := svc.GetManifest(context.Background(), uid)
		assert.ErrorIs(t, err, ErrInvalidUID, uid)
	}
}

func TestManifestService_GetManifest_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uid := utils.DeriveUID(testRecoveryKey)
	manifests := mock.NewMockManifestStore(ctrl)
	manifests.EXPECT().Load(gomock.Any(), uid).Return(models.Manifest{}, store.ErrManifestNotFound)

	_, err := NewManifestService(manifests, logger.Nop()).GetManifest(context.Background(), uid)

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestManifestService_GetManifest_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uid := utils.DeriveUID(testRecoveryKey)
	manifests := mock.NewMockManifestStore(ctrl)
	manifests.EXPECT().Load(gomock.Any(), uid).Return(models.Manifest{}, store.ErrMalformedManifest)

	_, err := NewManifestService(manifests, logger.Nop()).GetManifest(context.Background(), uid)

	assert.ErrorIs(t, err, store.ErrMalformedManifest)
}
