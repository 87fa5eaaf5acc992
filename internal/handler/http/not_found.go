// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-backup-vault/internal/app"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
)

// notFound answers unknown paths and known paths hit with an unsupported
// method alike, so a caller cannot probe which routes exist. The body uses
// the same {"error":code} shape as every other API failure.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.CodeNotFound, http.StatusNotFound)
}
