// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// backup-vault server handlers and the vaultctl client.
//
// All Code* constants are stable machine-readable error codes written into the
// "error" field of JSON response bodies. Clients match on them, so their
// values never change.
package app

const (
	// CodeInvalidUID is returned when the uid is absent, not 64 characters
	// long, or not a single safe path segment.
	CodeInvalidUID = "invalid_uid"

	// CodeMissingUID is returned by the wipe toggle when the body has no uid.
	CodeMissingUID = "missing_uid"

	// CodeInvalidTimestamp is returned when X-Timestamp is not made of
	// decimal digits only.
	CodeInvalidTimestamp = "invalid_timestamp"

	// CodeUploadTooLarge is returned when an upload body exceeds the
	// configured maximum size.
	CodeUploadTooLarge = "upload_too_large"

	// CodeWriteFailed is returned when an upload could not be persisted or
	// the manifest could not be rebuilt afterwards.
	CodeWriteFailed = "write_failed"

	// CodeMissingFields is returned when login is missing a username or a
	// recovery key, or the body is not valid JSON.
	CodeMissingFields = "missing_fields"

	// CodeUserNotFound is returned when no manifest exists for the uid.
	CodeUserNotFound = "user_not_found"

	// CodeInvalidCredentials is returned when the supplied username does not
	// match the recorded one.
	CodeInvalidCredentials = "invalid_credentials"

	// CodeNotFound is returned by the wipe toggle and the download route when
	// the account or blob does not exist.
	CodeNotFound = "not_found"

	// CodeInvalidName is returned when a download names something other than
	// a backup blob.
	CodeInvalidName = "invalid_name"

	// CodeUpdateFailed is returned when the wipe flag could not be persisted.
	CodeUpdateFailed = "update_failed"

	// CodeServerError is returned for any other server-side failure.
	CodeServerError = "server_error"
)
