// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// UploadRequest carries one incoming backup blob to the ingest service.
type UploadRequest struct {
	// UID is the account identifier taken from the "uid" query parameter.
	UID string

	// Username is the optional display label from the X-Username header.
	// Empty means the caller did not supply one.
	Username string

	// Timestamp is the optional epoch-millisecond string from the
	// X-Timestamp header. Empty means "now".
	Timestamp string

	// Body is the raw blob stream. It is written verbatim.
	Body io.Reader
}

// LoginRequest is the JSON body of POST /api/login.
type LoginRequest struct {
	Username    string `json:"username"`
	RecoveryKey string `json:"recoveryKey"`
}

// WipeRequest is the JSON body of POST /api/wipe.
type WipeRequest struct {
	UID    string `json:"uid"`
	Status Truthy `json:"status"`
}

// UploadResult is returned by a successful ingest.
type UploadResult struct {
	// Backup is the record of the blob that was just written.
	Backup Backup

	// RemoteWipeStatus is the account's wipe flag after the manifest rebuild.
	RemoteWipeStatus bool
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	UID      string
	Manifest Manifest
}
