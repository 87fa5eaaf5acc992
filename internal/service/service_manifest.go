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

type manifestService struct {
	manifestStore store.ManifestStore
	validator     validators.Validator
	logger        *logger.Logger
}

// NewManifestService constructs a [ManifestService] backed by manifestStore.
func NewManifestService(manifestStore store.ManifestStore, logger *logger.Logger) ManifestService {
	return &manifestService{
		manifestStore: manifestStore,
		validator:     validators.NewRequestValidator(),
		logger:        logger,
	}
}

// GetManifest returns the stored manifest of uid without modifying it.
func (s *manifestService) GetManifest(ctx context.Context, uid string) (models.Manifest, error) {
	if err := s.validator.Validate(ctx, uid); err != nil {
		return models.Manifest{}, err
	}

	manifest, err := s.manifestStore.Load(ctx, uid)
	if errors.Is(err, store.ErrManifestNotFound) {
		return models.Manifest{}, ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("uid", utils.ShortUID(uid)).Msg("manifest load failed")
		return models.Manifest{}, fmt.Errorf("manifest load failed: %w", err)
	}

	return manifest, nil
}
