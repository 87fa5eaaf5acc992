package service

import (
	"errors"

	"github.com/MKhiriev/go-backup-vault/internal/validators"
)

// Request validation errors. They are the validator's sentinels so that one
// errors.Is check works at every layer.
var (
	ErrMissingUID       = validators.ErrMissingUID
	ErrInvalidUID       = validators.ErrInvalidUID
	ErrInvalidTimestamp = validators.ErrInvalidTimestamp
	ErrMissingFields    = validators.ErrMissingFields
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrBackupNotSaved     = errors.New("backup was not saved")
	ErrManifestNotUpdated = errors.New("manifest was not updated")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
