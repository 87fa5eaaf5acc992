package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-backup-vault/internal/app"
	"github.com/MKhiriev/go-backup-vault/internal/service"
	"github.com/MKhiriev/go-backup-vault/internal/store"
)

type errorResponse struct {
	status int
	code   string
}

var errorResponseMap = map[error]errorResponse{
	service.ErrMissingUID:       {http.StatusBadRequest, app.CodeMissingUID},
	service.ErrInvalidUID:       {http.StatusBadRequest, app.CodeInvalidUID},
	service.ErrInvalidTimestamp: {http.StatusBadRequest, app.CodeInvalidTimestamp},
	service.ErrMissingFields:    {http.StatusBadRequest, app.CodeMissingFields},

	service.ErrAccountNotFound:    {http.StatusNotFound, app.CodeUserNotFound},
	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.CodeInvalidCredentials},

	store.ErrInvalidBackupName:  {http.StatusBadRequest, app.CodeInvalidName},
	store.ErrInvalidPathSegment: {http.StatusBadRequest, app.CodeInvalidName},
	store.ErrBackupNotFound:     {http.StatusNotFound, app.CodeNotFound},
}

// responseFromError maps err to a status and error code. Errors without a
// mapping become 500 with fallbackCode.
func responseFromError(err error, fallbackCode string) (int, string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, app.CodeUploadTooLarge
	}

	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp.status, resp.code
		}
	}

	return http.StatusInternalServerError, fallbackCode
}
