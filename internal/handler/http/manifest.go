package http

import (
	"net/http"

	"github.com/MKhiriev/go-backup-vault/internal/app"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

func (h *Handler) manifest(w http.ResponseWriter, r *http.Request) {
	manifest, err := h.services.ManifestService.GetManifest(r.Context(), r.URL.Query().Get("uid"))
	if err != nil {
		status, code := responseFromError(err, app.CodeServerError)
		if status == http.StatusInternalServerError {
			logger.FromRequest(r).Err(err).Msg("error reading manifest")
		}
		utils.WriteError(w, code, status)
		return
	}

	utils.WriteJSON(w, models.ManifestResponse{OK: true, Manifest: manifest}, http.StatusOK)
}
