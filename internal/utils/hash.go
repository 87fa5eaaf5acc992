// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// UIDLength is the length of an account identifier: a hex-encoded SHA-256
// digest.
const UIDLength = sha256.Size * 2

// DeriveUID maps a recovery key to its account identifier.
//
// The identifier is the lowercase hex SHA-256 digest of the key's UTF-8
// bytes. No salt is mixed in: the same key always yields the same uid, so
// knowing the key is both necessary and sufficient to reach the account.
//
// Example usage:
//
//	uid := utils.DeriveUID("correct horse battery staple")
func DeriveUID(recoveryKey string) string {
	sum := sha256.Sum256([]byte(recoveryKey))
	return hex.EncodeToString(sum[:])
}

// HasUIDLength reports whether uid has exactly [UIDLength] characters. The
// content is not inspected.
func HasUIDLength(uid string) bool {
	return len(uid) == UIDLength
}

// IsSafePathSegment reports whether s can be used as a single directory or
// file name below a storage root: it must be non-empty, must not contain path
// separators or NUL bytes, and must not be "." or "..".
func IsSafePathSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}

	return !strings.ContainsAny(s, "/\\\x00")
}

// ShortUID returns the first 8 characters of uid for log output.
func ShortUID(uid string) string {
	if len(uid) <= 8 {
		return uid
	}

	return uid[:8]
}
