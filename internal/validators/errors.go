package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingUID       = errors.New("uid is required")
	ErrInvalidUID       = errors.New("invalid uid")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrMissingFields    = errors.New("username and recovery key are required")
)
