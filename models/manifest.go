// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// ManifestSchemaVersion is the version written into every manifest produced
// by this server. Documents without a version (or with version 0) were written
// by the legacy server and are migrated on load.
const ManifestSchemaVersion = 1

// UnknownBackupDate is rendered into [Backup.Timestamp] when the epoch encoded
// in a backup file name cannot be parsed.
const UnknownBackupDate = "Unknown Date"

// Manifest is the persisted snapshot of one account. It is the only durable
// representation of account state; there is no separate database.
type Manifest struct {
	// SchemaVersion identifies the document layout. See [ManifestSchemaVersion].
	SchemaVersion int `json:"schema_version"`

	// UID is the account identifier: the hex SHA-256 digest of the
	// recovery key. It always equals the name of the account directory.
	UID string `json:"uid"`

	// Username is the display label recorded for the account. An empty value
	// means no username has been supplied yet.
	Username string `json:"username,omitempty"`

	// Latest is the file name of the newest backup, or empty when the account
	// directory holds no backups.
	Latest string `json:"latest"`

	// Total is the number of backup files present when the manifest was
	// rebuilt. It always equals len(Backups).
	Total int `json:"total"`

	// TotalSize is the sum of all backup sizes in bytes.
	TotalSize int64 `json:"total_size"`

	// TotalSizeHuman is TotalSize rendered for people (e.g. "1.2 MiB").
	TotalSizeHuman string `json:"total_size_human,omitempty"`

	// RemoteWipeStatus is the flag polled by client devices. It is only
	// changed by the wipe toggle and survives every rebuild.
	RemoteWipeStatus bool `json:"remote_wipe_status"`

	// Backups lists every backup ordered from oldest to newest.
	Backups []Backup `json:"backups"`

	// Updated is the moment the manifest was last written.
	Updated time.Time `json:"updated"`
}

// HasUsername reports whether a username has been recorded for the account.
func (m Manifest) HasUsername() bool {
	return m.Username != ""
}

// UsernameMatches compares username with the recorded one, ignoring case and
// surrounding whitespace.
func (m Manifest) UsernameMatches(username string) bool {
	return strings.EqualFold(strings.TrimSpace(m.Username), strings.TrimSpace(username))
}

// Backup describes one persisted blob.
type Backup struct {
	// Name is the file name, "backup_<epoch-ms>.enc".
	Name string `json:"name"`

	// RawTS is the epoch string extracted from Name.
	RawTS string `json:"raw_ts"`

	// Timestamp is RawTS rendered for people, or [UnknownBackupDate].
	Timestamp string `json:"timestamp"`

	// Size is the blob size in bytes at rebuild time.
	Size int64 `json:"size"`
}
