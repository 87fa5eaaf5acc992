// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotAvailable stands in for build metadata the linker did not provide.
const NotAvailable = "N/A"

// AppBuildInfo carries the linker-injected build metadata of the server
// binary. It is reported by GET /api/version and printed on startup.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]; empty values become
// [NotAvailable].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }

// Linked reports whether a version was injected at link time.
func (a AppBuildInfo) Linked() bool {
	return a.version != NotAvailable
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
