package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUIDPresence requires a non-empty uid.
	FieldUIDPresence = "uid_presence"

	// FieldUID requires a uid of exactly 64 characters that is also a safe
	// single path segment. An empty uid fails this rule too.
	FieldUID = "uid"

	// FieldTimestamp requires a timestamp made only of decimal digits.
	FieldTimestamp = "timestamp"

	// FieldUsername requires a username that is not blank after trimming.
	FieldUsername = "username"

	// FieldRecoveryKey requires a non-empty recovery key.
	FieldRecoveryKey = "recovery_key"
)

// RequestValidator implements [Validator] for the vault request models:
// UploadRequest, LoginRequest, WipeRequest, and a bare uid string.
type RequestValidator struct{}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of each request model are accepted; a string is validated as a uid.
//
// Default fields per type:
//   - models.UploadRequest: FieldUID, FieldTimestamp
//   - models.LoginRequest: FieldUsername, FieldRecoveryKey
//   - models.WipeRequest: FieldUIDPresence, FieldUID
//   - string: FieldUID
//
// Returns ErrUnsupportedType for any other type.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.WipeRequest:
		return v.validateWipeRequest(value, fields...)
	case *models.WipeRequest:
		return v.validateWipeRequest(*value, fields...)

	case string:
		return v.validateUID(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateUploadRequest(request models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUID, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldUIDPresence, FieldUID:
			if err := checkUID(request.UID, f); err != nil {
				return err
			}
		case FieldTimestamp:
			if !isDigits(request.Timestamp) {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoginRequest reports ErrMissingFields for either blank input. The
// recovery key is not trimmed: surrounding spaces are part of the secret.
func (v *RequestValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldRecoveryKey}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(request.Username) == "" {
				return ErrMissingFields
			}
		case FieldRecoveryKey:
			if request.RecoveryKey == "" {
				return ErrMissingFields
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateWipeRequest(request models.WipeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUIDPresence, FieldUID}
	}

	return v.validateUID(request.UID, fields...)
}

func (v *RequestValidator) validateUID(uid string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUID}
	}

	for _, f := range fields {
		switch f {
		case FieldUIDPresence, FieldUID:
			if err := checkUID(uid, f); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkUID(uid, field string) error {
	if field == FieldUIDPresence {
		if uid == "" {
			return ErrMissingUID
		}
		return nil
	}

	if !utils.HasUIDLength(uid) || !utils.IsSafePathSegment(uid) {
		return ErrInvalidUID
	}

	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
