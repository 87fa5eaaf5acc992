package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/store"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/internal/validators"
	"github.com/MKhiriev/go-backup-vault/models"
)

// authService is the concrete implementation of AuthService.
// The recovery key is the only credential: it is hashed into the account uid
// and never stored or logged.
type authService struct {
	// manifestStore is used to look up the account of the derived uid.
	manifestStore store.ManifestStore

	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService backed by manifestStore.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(manifestStore store.ManifestStore, logger *logger.Logger) AuthService {
	return &authService{
		manifestStore: manifestStore,
		validator:     validators.NewRequestValidator(),
		logger:        logger,
	}
}

// Login authenticates a recovery key and username pair.
//
// The uid is derived from the recovery key and its manifest is loaded. When
// the manifest records no username yet, any supplied username is accepted.
// Otherwise the trimmed usernames must match case-insensitively. No session
// token is issued.
//
// Returns the uid and stored manifest, or:
//   - ErrMissingFields if the username is blank or the recovery key empty.
//   - ErrAccountNotFound if no manifest exists for the derived uid.
//   - ErrInvalidCredentials if a recorded username does not match.
//   - A wrapped storage error for any other failure.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("invalid login request")
		return models.LoginResult{}, err
	}

	uid := utils.DeriveUID(req.RecoveryKey)
	log.Info().Str("uid", utils.ShortUID(uid)).Msg("login attempt")

	manifest, err := a.manifestStore.Load(ctx, uid)
	if errors.Is(err, store.ErrManifestNotFound) {
		log.Info().Str("uid", utils.ShortUID(uid)).Msg("no account for recovery key")
		return models.LoginResult{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("uid", utils.ShortUID(uid)).Msg("manifest load failed")
		return models.LoginResult{}, fmt.Errorf("manifest load failed: %w", err)
	}

	if manifest.HasUsername() && !manifest.UsernameMatches(req.Username) {
		log.Info().Str("uid", utils.ShortUID(uid)).Msg("username mismatch")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	return models.LoginResult{UID: uid, Manifest: manifest}, nil
}
