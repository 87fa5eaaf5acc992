package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-backup-vault/internal/app"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/service"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

func (h *Handler) wipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.WipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.CodeMissingUID, http.StatusBadRequest)
		return
	}

	wipeStatus, err := h.services.WipeService.SetWipe(r.Context(), req)
	if err != nil {
		// the toggle reports a missing account as a plain not_found
		if errors.Is(err, service.ErrAccountNotFound) {
			utils.WriteError(w, app.CodeNotFound, http.StatusNotFound)
			return
		}

		status, code := responseFromError(err, app.CodeUpdateFailed)
		if status == http.StatusInternalServerError {
			log.Err(err).Msg("error updating wipe status")
		}
		utils.WriteError(w, code, status)
		return
	}

	h.metrics.RecordWipeToggle(wipeStatus)
	utils.WriteJSON(w, models.WipeResponse{OK: true, RemoteWipeStatus: wipeStatus}, http.StatusOK)
}
