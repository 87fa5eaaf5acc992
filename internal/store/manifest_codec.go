package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-backup-vault/models"
)

// legacyUnknownUsername is the placeholder the first generation of the server
// stored when no username had been supplied.
const legacyUnknownUsername = "Unknown"

// rawManifest accepts both the current document layout and the legacy one
// (user/files keys, null latest, no schema_version).
type rawManifest struct {
	SchemaVersion    int             `json:"schema_version"`
	UID              string          `json:"uid"`
	User             string          `json:"user"`
	Username         string          `json:"username"`
	Latest           *string         `json:"latest"`
	Total            *int            `json:"total"`
	TotalSize        int64           `json:"total_size"`
	TotalSizeHuman   string          `json:"total_size_human"`
	RemoteWipeStatus bool            `json:"remote_wipe_status"`
	Backups          []models.Backup `json:"backups"`
	Files            []models.Backup `json:"files"`
	Updated          time.Time       `json:"updated"`
}

// decodeManifest parses data as the manifest of uid, migrating legacy
// documents into the current schema. Any decoding failure or invariant
// violation yields [ErrMalformedManifest].
func decodeManifest(uid string, data []byte) (models.Manifest, error) {
	var raw rawManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Manifest{}, fmt.Errorf("%w: %w", ErrMalformedManifest, err)
	}

	m := models.Manifest{
		SchemaVersion:    raw.SchemaVersion,
		UID:              raw.UID,
		Username:         raw.Username,
		TotalSize:        raw.TotalSize,
		TotalSizeHuman:   raw.TotalSizeHuman,
		RemoteWipeStatus: raw.RemoteWipeStatus,
		Backups:          raw.Backups,
		Updated:          raw.Updated,
	}
	if raw.Latest != nil {
		m.Latest = *raw.Latest
	}

	switch {
	case raw.SchemaVersion == 0:
		migrateLegacyManifest(&m, raw)
	case raw.SchemaVersion > models.ManifestSchemaVersion:
		return models.Manifest{}, fmt.Errorf("%w: unsupported schema version %d", ErrMalformedManifest, raw.SchemaVersion)
	}

	if m.Backups == nil {
		m.Backups = []models.Backup{}
	}

	if raw.Total == nil {
		return models.Manifest{}, fmt.Errorf("%w: missing total", ErrMalformedManifest)
	}
	m.Total = *raw.Total

	if err := validateManifest(uid, m); err != nil {
		return models.Manifest{}, err
	}

	return m, nil
}

func migrateLegacyManifest(m *models.Manifest, raw rawManifest) {
	m.SchemaVersion = models.ManifestSchemaVersion
	if m.UID == "" {
		m.UID = raw.User
	}
	if m.Username == legacyUnknownUsername {
		m.Username = ""
	}
	if m.Backups == nil {
		m.Backups = raw.Files
	}

	for _, b := range m.Backups {
		m.TotalSize += b.Size
	}
}

func validateManifest(uid string, m models.Manifest) error {
	if m.UID != uid {
		return fmt.Errorf("%w: uid does not match account directory", ErrMalformedManifest)
	}
	if m.Total != len(m.Backups) {
		return fmt.Errorf("%w: total %d does not match %d listed backups", ErrMalformedManifest, m.Total, len(m.Backups))
	}

	return nil
}

func encodeManifest(m models.Manifest) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}
