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

type wipeService struct {
	manifestStore store.ManifestStore
	validator     validators.Validator
	logger        *logger.Logger
}

// NewWipeService constructs a [WipeService] backed by manifestStore.
func NewWipeService(manifestStore store.ManifestStore, logger *logger.Logger) WipeService {
	return &wipeService{
		manifestStore: manifestStore,
		validator:     validators.NewRequestValidator(),
		logger:        logger,
	}
}

// SetWipe persists req.Status as the remote wipe flag of req.UID and returns
// the stored value. Nothing else in the manifest changes.
func (s *wipeService) SetWipe(ctx context.Context, req models.WipeRequest) (bool, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("invalid wipe request")
		return false, err
	}

	status, err := s.manifestStore.SetWipeStatus(ctx, req.UID, req.Status.Bool())
	if errors.Is(err, store.ErrManifestNotFound) {
		return false, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("uid", utils.ShortUID(req.UID)).Msg("wipe status update failed")
		return false, fmt.Errorf("wipe status update failed: %w", err)
	}

	log.Info().Str("uid", utils.ShortUID(req.UID)).Bool("remote_wipe_status", status).Msg("wipe status changed")
	return status, nil
}
