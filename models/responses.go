// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadResponse is the body returned by POST /upload.
type UploadResponse struct {
	OK               bool `json:"ok"`
	RemoteWipeStatus bool `json:"remote_wipe_status"`
}

// LoginResponse is the body returned by POST /api/login.
type LoginResponse struct {
	OK       bool     `json:"ok"`
	UID      string   `json:"uid"`
	Manifest Manifest `json:"manifest"`
}

// ManifestResponse is the body returned by GET /api/manifest.
type ManifestResponse struct {
	OK       bool     `json:"ok"`
	Manifest Manifest `json:"manifest"`
}

// WipeResponse is the body returned by POST /api/wipe.
type WipeResponse struct {
	OK               bool `json:"ok"`
	RemoteWipeStatus bool `json:"remote_wipe_status"`
}

// HealthResponse is the body returned by GET /api/health.
type HealthResponse struct {
	OK        bool   `json:"ok"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// VersionResponse is the body returned by GET /api/version.
type VersionResponse struct {
	OK          bool   `json:"ok"`
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}

// ErrorResponse is the body of every non-2xx JSON response. Error holds a
// stable machine-readable code such as "invalid_uid".
type ErrorResponse struct {
	Error string `json:"error"`
}
