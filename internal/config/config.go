// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// backup-vault server. It is populated by merging defaults, an optional
// config file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the account data directory and the
	// optional off-site mirror.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses, timeouts and upload limits.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// Files holds the account data directory settings.
	Files Files `envPrefix:"FILES_"`

	// Mirror holds the optional off-site copy settings.
	Mirror Mirror `envPrefix:"MIRROR_"`
}

// Files holds file-system settings for account directories.
type Files struct {
	// DataDir is the root directory holding one sub-directory per account.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// LockAccounts serializes manifest read-modify-write cycles per account.
	// When false, concurrent writers to one account race and the last write
	// wins.
	// Env: STORAGE_FILES_LOCK_ACCOUNTS
	LockAccounts bool `env:"LOCK_ACCOUNTS"`
}

// Mirror holds settings for copying uploaded backups and manifests to
// S3-compatible object storage. The mirror is disabled while S3.Bucket is
// empty.
type Mirror struct {
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds the S3-compatible endpoint settings used by the mirror.
type S3 struct {
	// Env: STORAGE_MIRROR_S3_BUCKET
	Bucket string `env:"BUCKET"`
	// Env: STORAGE_MIRROR_S3_REGION
	Region string `env:"REGION"`
	// Endpoint overrides the AWS endpoint, e.g. "http://minio:9000".
	// Env: STORAGE_MIRROR_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// Env: STORAGE_MIRROR_S3_ACCESS_KEY_ID
	AccessKeyID string `env:"ACCESS_KEY_ID"`
	// Env: STORAGE_MIRROR_S3_SECRET_ACCESS_KEY
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	// Prefix is prepended to every object key.
	// Env: STORAGE_MIRROR_S3_PREFIX
	Prefix string `env:"PREFIX"`
	// UsePathStyle is required by most self-hosted S3 implementations.
	// Env: STORAGE_MIRROR_S3_USE_PATH_STYLE
	UsePathStyle bool `env:"USE_PATH_STYLE"`
}

// Enabled reports whether the mirror is configured.
func (s S3) Enabled() bool {
	return s.Bucket != ""
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the API listener (e.g. ":8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// MetricsAddress is the TCP address of the Prometheus listener. Metrics
	// are not served when empty.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`

	// ReadHeaderTimeout bounds how long the server waits for request headers.
	// Upload bodies are not bounded by it.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MaxUploadBytes caps the size of one uploaded blob. Zero means no limit.
	// Env: SERVER_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
