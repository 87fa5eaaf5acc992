package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

// healthTimestampLayout is ISO 8601 in UTC with millisecond precision.
const healthTimestampLayout = "2006-01-02T15:04:05.000Z"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		OK:        true,
		Status:    "Server is running",
		Timestamp: time.Now().UTC().Format(healthTimestampLayout),
	}, http.StatusOK)
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	build := h.services.AppInfoService.GetBuildInfo(ctx)

	utils.WriteJSON(w, models.VersionResponse{
		OK:          true,
		Version:     h.services.AppInfoService.GetAppVersion(ctx),
		BuildDate:   build.BuildDate(),
		BuildCommit: build.BuildCommit(),
	}, http.StatusOK)
}
