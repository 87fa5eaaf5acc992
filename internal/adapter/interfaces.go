// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the backup-vault HTTP API.
//
// The primary abstraction is [VaultAdapter], which decouples the vaultctl
// commands and the wipe watcher from the wire protocol. The package ships an
// HTTP/REST implementation ([NewHTTPVaultAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). The
// server's machine-readable error code is kept in the error message.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-backup-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_adapter_mock.go -package=mock

// VaultAdapter defines communication with the backup-vault server.
type VaultAdapter interface {
	// Upload streams body as a new backup of uid. Empty username or
	// timestamp are omitted so the server applies its defaults. Returns the
	// account's wipe flag after the upload.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)

	// Download streams the named backup of uid into w and returns the number
	// of bytes written.
	Download(ctx context.Context, uid, name string, w io.Writer) (int64, error)

	// Login verifies the recovery key and username pair and returns the
	// derived uid with the stored manifest.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// GetManifest fetches the manifest of uid.
	GetManifest(ctx context.Context, uid string) (models.Manifest, error)

	// SetWipe sets the remote wipe flag of uid and returns the stored value.
	SetWipe(ctx context.Context, uid string, status bool) (bool, error)

	// Health reports the server liveness payload.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version reports the server build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}
