package service

import (
	"context"
	"errors"
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

const testRecoveryKey = "correct horse battery staple"

func newTestAuthService(ctrl *gomock.Controller) (AuthService, *mock.MockManifestStore) {
	manifests := mock.NewMockManifestStore(ctrl)
	return NewAuthService(manifests, logger.Nop()), manifests
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, manifests := newTestAuthService(ctrl)
	ctx := context.Background()
	uid := utils.DeriveUID(testRecoveryKey)
	stored := models.Manifest{SchemaVersion: 1, UID: uid, Username: "Alice", Total: 0}

	manifests.EXPECT().Load(ctx, uid).Return(stored, nil)

	result, err := svc.Login(ctx, models.LoginRequest{Username: "  alice ", RecoveryKey: testRecoveryKey})

	require.NoError(t, err)
	assert.Equal(t, uid, result.UID)
	assert.Equal(t, stored, result.Manifest)
}

func TestAuthService_Login_NoRecordedUsername_AcceptsAny(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, manifests := newTestAuthService(ctrl)
	ctx := context.Background()
	uid := utils.DeriveUID(testRecoveryKey)

	manifests.EXPECT().Load(ctx, uid).Return(models.Manifest{UID: uid}, nil)

	result, err := svc.Login(ctx, models.LoginRequest{Username: "whoever", RecoveryKey: testRecoveryKey})

	require.NoError(t, err)
	assert.Equal(t, uid, result.UID)
}

func TestAuthService_Login_UsernameMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, manifests := newTestAuthService(ctrl)
	ctx := context.Background()
	uid := utils.DeriveUID(testRecoveryKey)

	manifests.EXPECT().Load(ctx, uid).Return(models.Manifest{UID: uid, Username: "alice"}, nil)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "bob", RecoveryKey: testRecoveryKey})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, manifests := newTestAuthService(ctrl)
	ctx := context.Background()

	manifests.EXPECT().Load(ctx, gomock.Any()).Return(models.Manifest{}, store.ErrManifestNotFound)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "alice", RecoveryKey: "unknown"})

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAuthService_Login_StoreFailure_IsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, manifests := newTestAuthService(ctrl)
	ctx := context.Background()

	manifests.EXPECT().Load(ctx, gomock.Any()).Return(models.Manifest{}, store.ErrMalformedManifest)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "alice", RecoveryKey: testRecoveryKey})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrMalformedManifest)
	assert.False(t, errors.Is(err, ErrAccountNotFound))
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  models.LoginRequest
	}{
		{name: "empty username", req: models.LoginRequest{RecoveryKey: testRecoveryKey}},
		{name: "blank username", req: models.LoginRequest{Username: "   ", RecoveryKey: testRecoveryKey}},
		{name: "empty key", req: models.LoginRequest{Username: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _ := newTestAuthService(ctrl)

			_, err := svc.Login(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}
