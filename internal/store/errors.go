package store

import "errors"

// Sentinel errors returned by the file-backed stores to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrManifestNotFound is returned when the account directory holds no
	// manifest file, i.e. the account does not exist.
	ErrManifestNotFound = errors.New("manifest was not found")

	// ErrMalformedManifest is returned when a manifest file exists but cannot
	// be decoded, or decodes into a document that violates its invariants
	// (uid differs from the directory name, total differs from the number of
	// listed backups).
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrBackupNotFound is returned when a requested blob does not exist.
	ErrBackupNotFound = errors.New("backup was not found")

	// ErrInvalidPathSegment is returned when a uid or file name would resolve
	// outside of its account directory.
	ErrInvalidPathSegment = errors.New("invalid path segment")

	// ErrInvalidBackupName is returned when a blob name does not follow the
	// backup_<digits>.enc pattern.
	ErrInvalidBackupName = errors.New("invalid backup name")
)

// Low-level file operation errors. These wrap the underlying os error and are
// returned before any domain logic can be applied.
var (
	// ErrCreatingAccountDir is returned when the account directory cannot be
	// created below the data directory.
	ErrCreatingAccountDir = errors.New("failed to create account directory")

	// ErrWritingBackup is returned when streaming a blob to disk fails. No
	// partial file is left behind.
	ErrWritingBackup = errors.New("failed to write backup")

	// ErrListingBackups is returned when the account directory cannot be read.
	ErrListingBackups = errors.New("failed to list backups")

	// ErrReadingManifest is returned when an existing manifest file cannot be
	// read.
	ErrReadingManifest = errors.New("failed to read manifest")

	// ErrWritingManifest is returned when a manifest cannot be persisted.
	ErrWritingManifest = errors.New("failed to write manifest")

	// ErrMirroring is returned when copying files to the off-site mirror
	// fails.
	ErrMirroring = errors.New("failed to mirror files")
)
