package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-backup-vault/internal/app"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

const (
	usernameHeader  = "X-Username"
	timestampHeader = "X-Timestamp"
)

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	result, err := h.services.BackupService.Ingest(r.Context(), models.UploadRequest{
		UID:       r.URL.Query().Get("uid"),
		Username:  r.Header.Get(usernameHeader),
		Timestamp: r.Header.Get(timestampHeader),
		Body:      r.Body,
	})
	if err != nil {
		h.metrics.RecordUpload(false, 0)
		status, code := responseFromError(err, app.CodeWriteFailed)
		log.Err(err).Int("status", status).Msg("upload rejected")
		utils.WriteError(w, code, status)
		return
	}

	h.metrics.RecordUpload(true, result.Backup.Size)
	utils.WriteJSON(w, models.UploadResponse{OK: true, RemoteWipeStatus: result.RemoteWipeStatus}, http.StatusOK)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	uid, name := chi.URLParam(r, "uid"), chi.URLParam(r, "name")

	file, err := h.services.BackupService.OpenBackup(r.Context(), uid, name)
	if err != nil {
		status, code := responseFromError(err, app.CodeServerError)
		if status == http.StatusInternalServerError {
			log.Err(err).Msg("error opening backup")
		}
		utils.WriteError(w, code, status)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeContent(w, r, file.Name, file.ModTime, file)
}
