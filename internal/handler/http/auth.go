package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-backup-vault/internal/app"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/metrics"
	"github.com/MKhiriev/go-backup-vault/internal/service"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.metrics.RecordLogin(metrics.LoginRejected)
		utils.WriteError(w, app.CodeMissingFields, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.metrics.RecordLogin(loginOutcome(err))
		status, code := responseFromError(err, app.CodeServerError)
		if status == http.StatusInternalServerError {
			log.Err(err).Msg("unexpected error occurred during login")
		}
		utils.WriteError(w, code, status)
		return
	}

	h.metrics.RecordLogin(metrics.LoginSuccess)
	log.Debug().Str("uid", utils.ShortUID(result.UID)).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{OK: true, UID: result.UID, Manifest: result.Manifest}, http.StatusOK)
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		return metrics.LoginUserNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return metrics.LoginInvalidCredentials
	case errors.Is(err, service.ErrMissingFields):
		return metrics.LoginRejected
	default:
		return metrics.LoginError
	}
}
