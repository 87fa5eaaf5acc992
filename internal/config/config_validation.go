// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Files.DataDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Mirror.S3.Enabled() && cfg.Storage.Mirror.S3.Region == "" {
		return fmt.Errorf("%w: mirror bucket requires a region", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadBytes < 0 {
		return ErrInvalidServerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Address == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
