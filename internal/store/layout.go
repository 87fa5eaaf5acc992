package store

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

const (
	// ManifestFileName is the name of the manifest inside an account directory.
	ManifestFileName = "manifest.json"

	backupPrefix = "backup_"
	backupSuffix = ".enc"

	// partSuffix marks blobs that are still being written. They are never
	// listed as backups.
	partSuffix = ".part"

	// BackupDateLayout renders a backup epoch for people. Dates are always UTC.
	BackupDateLayout = "Jan 2, 2006, 3:04:05 PM MST"

	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// BackupFileName returns the blob name for an epoch-millisecond string.
func BackupFileName(ts string) string {
	return backupPrefix + ts + backupSuffix
}

// IsBackupFileName reports whether name has the backup_<digits>.enc form
// produced by [BackupFileName] for a valid timestamp.
func IsBackupFileName(name string) bool {
	ts, ok := backupRawTS(name)
	return ok && ts != "" && isDigits(ts)
}

// backupRawTS extracts the part between "backup_" and ".enc".
func backupRawTS(name string) (string, bool) {
	if !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
		return "", false
	}
	if len(name) < len(backupPrefix)+len(backupSuffix) {
		return "", false
	}

	return name[len(backupPrefix) : len(name)-len(backupSuffix)], true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// newBackup builds the manifest record for a blob file.
func newBackup(name string, size int64) models.Backup {
	raw, _ := backupRawTS(name)
	b := models.Backup{
		Name:      name,
		RawTS:     raw,
		Timestamp: models.UnknownBackupDate,
		Size:      size,
	}

	if epoch, err := strconv.ParseInt(raw, 10, 64); err == nil {
		b.Timestamp = time.UnixMilli(epoch).UTC().Format(BackupDateLayout)
	}

	return b
}

// sortBackups orders backups by parsed epoch, ascending. Names whose epoch
// cannot be parsed come first, ordered lexically among themselves, so the
// last element always carries the greatest real epoch.
func sortBackups(backups []models.Backup) {
	slices.SortStableFunc(backups, func(a, b models.Backup) int {
		ea, errA := strconv.ParseInt(a.RawTS, 10, 64)
		eb, errB := strconv.ParseInt(b.RawTS, 10, 64)

		switch {
		case errA != nil && errB != nil:
			return cmp.Compare(a.Name, b.Name)
		case errA != nil:
			return -1
		case errB != nil:
			return 1
		}

		if c := cmp.Compare(ea, eb); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}

// accountDir resolves the directory of uid below root, rejecting uids that
// would escape it.
func accountDir(root, uid string) (string, error) {
	if !utils.IsSafePathSegment(uid) {
		return "", fmt.Errorf("%w: uid %q", ErrInvalidPathSegment, utils.ShortUID(uid))
	}

	return filepath.Join(root, uid), nil
}

// atomicWriteFile replaces path with data. The bytes go to a hidden temp file
// in the same directory which is fsynced and then renamed over path, so
// readers observe either the old or the new content.
func atomicWriteFile(path string, data []byte, perm os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Chmod(perm); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
