package store

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
)

type fakePutter struct {
	mu      sync.Mutex
	objects map[string]string
	err     error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = make(map[string]string)
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = string(body)

	return &s3.PutObjectOutput{}, nil
}

func TestS3Mirror_Replicate(t *testing.T) {
	ctx := context.Background()
	manifests, blobs, root := newTestStores(t, false)
	uid := utils.DeriveUID("mirror")

	saveBackup(t, blobs, uid, "1000", "blob")
	_, err := manifests.Rebuild(ctx, uid, "")
	require.NoError(t, err)

	putter := &fakePutter{}
	mirror := newS3Mirror(root, config.S3{Bucket: "vault", Prefix: "prod/"}, putter, logger.Nop())

	require.NoError(t, mirror.Replicate(ctx, uid, BackupFileName("1000"), ManifestFileName))

	keys := make([]string, 0, len(putter.objects))
	for k := range putter.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{
		"vault/prod/" + uid + "/backup_1000.enc",
		"vault/prod/" + uid + "/manifest.json",
	}, keys)
	assert.Equal(t, "blob", putter.objects["vault/prod/"+uid+"/backup_1000.enc"])
}

func TestS3Mirror_ReplicateErrors(t *testing.T) {
	ctx := context.Background()
	_, blobs, root := newTestStores(t, false)
	uid := utils.DeriveUID("mirror-errors")
	saveBackup(t, blobs, uid, "1", "x")

	putErr := errors.New("access denied")
	mirror := newS3Mirror(root, config.S3{Bucket: "vault"}, &fakePutter{err: putErr}, logger.Nop())

	err := mirror.Replicate(ctx, uid, BackupFileName("1"))
	assert.ErrorIs(t, err, ErrMirroring)
	assert.ErrorIs(t, err, putErr)

	mirror = newS3Mirror(root, config.S3{Bucket: "vault"}, &fakePutter{}, logger.Nop())
	err = mirror.Replicate(ctx, uid, BackupFileName("404"))
	assert.ErrorIs(t, err, ErrMirroring)

	err = mirror.Replicate(ctx, "..", BackupFileName("1"))
	assert.ErrorIs(t, err, ErrInvalidPathSegment)
}

func TestNoopMirror(t *testing.T) {
	assert.NoError(t, NewNoopMirror().Replicate(context.Background(), "uid", "a", "b"))
}

func TestNewStorages(t *testing.T) {
	cfg := config.Storage{Files: config.Files{DataDir: t.TempDir()}}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, storages.ManifestStore)
	assert.NotNil(t, storages.BackupStorage)
	assert.IsType(t, noopMirror{}, storages.Mirror)
}
