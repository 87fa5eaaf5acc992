// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the commands of the vaultctl command-line tool.
//
// Each command talks to the vault server through an [adapter.VaultAdapter]
// and writes human-readable output to the configured writer. Long-running
// commands such as watch delegate to the background workers package.
package client
