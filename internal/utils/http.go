package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-backup-vault/models"
)

// serverErrorBody is written when a response cannot be encoded. It matches
// the shape of every other error body.
const serverErrorBody = `{"error":"server_error"}`

// WriteJSON encodes data and writes it with statusCode and a JSON content
// type. Encoding happens before anything is sent, so a value that cannot be
// encoded turns into a 500 with a server_error body and a returned error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(serverErrorBody))
		return 0, fmt.Errorf("encode response: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteError writes a `{"error": code}` body with the given status.
func WriteError(w http.ResponseWriter, code string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: code}, statusCode)
}
