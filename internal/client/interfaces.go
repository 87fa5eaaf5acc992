// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the operations exposed by vaultctl. Every method writes its
// result to the application's output and returns an error on failure.
type Client interface {
	// UID prints the account identifier derived from recoveryKey. It does
	// not contact the server.
	UID(recoveryKey string) error

	// Login verifies the credentials and prints the account summary.
	Login(ctx context.Context, username, recoveryKey string) error

	// Manifest prints the backup list of uid.
	Manifest(ctx context.Context, uid string) error

	// Upload sends one backup file.
	Upload(ctx context.Context, opts UploadOptions) error

	// Download fetches one backup to a local file or standard output.
	Download(ctx context.Context, opts DownloadOptions) error

	// Wipe sets the remote wipe flag of uid.
	Wipe(ctx context.Context, uid string, status bool) error

	// Watch polls the remote wipe flag of uid until ctx is cancelled.
	Watch(ctx context.Context, uid string) error

	// Health prints the server liveness status.
	Health(ctx context.Context) error

	// Version prints the server build information.
	Version(ctx context.Context) error
}
