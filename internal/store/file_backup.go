// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
)

// BackupFile is an open, read-only handle to a stored blob. The caller must
// close it.
type BackupFile struct {
	*os.File

	Name    string
	Size    int64
	ModTime time.Time
}

// backupFileStorage is the default implementation of [BackupStorage]. Blobs
// are stored verbatim as <root>/<uid>/backup_<epoch-ms>.enc.
type backupFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewBackupFileStorage constructs a [BackupStorage] rooted at cfg.DataDir.
func NewBackupFileStorage(cfg config.Files, logger *logger.Logger) BackupStorage {
	return &backupFileStorage{
		root:   cfg.DataDir,
		logger: logger,
	}
}

// SaveBackup streams body to a hidden .part file next to its final location
// and renames it once the copy and fsync succeed. A failing read, a cancelled
// ctx or a failing write removes the temp file, so a partial blob is never
// listed by a rebuild. An existing blob with the same name is replaced.
func (s *backupFileStorage) SaveBackup(ctx context.Context, uid, name string, body io.Reader) (written int64, err error) {
	if !IsBackupFileName(name) {
		return 0, ErrInvalidBackupName
	}

	dir, err := accountDir(s.root, uid)
	if err != nil {
		return 0, err
	}

	if err = os.MkdirAll(dir, dirPerm); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCreatingAccountDir, err)
	}

	f, err := os.CreateTemp(dir, "."+name+".*"+partSuffix)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWritingBackup, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			if rmErr := os.Remove(tmp); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				s.logger.Warn().Err(rmErr).Str("path", tmp).Msg("failed to remove partial backup")
			}
			err = fmt.Errorf("%w: %w", ErrWritingBackup, err)
		}
	}()

	written, err = io.Copy(f, &contextReader{ctx: ctx, r: body})
	if err != nil {
		return written, err
	}
	if err = f.Sync(); err != nil {
		return written, err
	}
	if err = f.Chmod(filePerm); err != nil {
		return written, err
	}
	if err = f.Close(); err != nil {
		return written, err
	}
	if err = os.Rename(tmp, filepath.Join(dir, name)); err != nil {
		return written, err
	}

	return written, nil
}

func (s *backupFileStorage) OpenBackup(ctx context.Context, uid, name string) (*BackupFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !IsBackupFileName(name) {
		return nil, ErrInvalidBackupName
	}

	dir, err := accountDir(s.root, uid)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrBackupNotFound
	}
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, ErrBackupNotFound
	}

	return &BackupFile{
		File:    f,
		Name:    name,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// contextReader aborts a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}
