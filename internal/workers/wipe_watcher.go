// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-backup-vault/internal/adapter"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
)

const defaultPollInterval = time.Minute

// WipeEvent is reported by [WipeWatcher] on the first successful poll and on
// every change of the remote wipe flag afterwards.
type WipeEvent struct {
	RemoteWipeStatus bool
	Initial          bool
	ObservedAt       time.Time
}

// WipeWatcher polls the manifest of one account and reports changes of its
// remote wipe flag. Poll failures are logged and retried on the next tick.
type WipeWatcher struct {
	vault    adapter.VaultAdapter
	uid      string
	interval time.Duration
	onChange func(WipeEvent)

	logger *logger.Logger
}

// NewWipeWatcher creates a watcher for uid. A non-positive interval falls back
// to one minute.
func NewWipeWatcher(vault adapter.VaultAdapter, uid string, interval time.Duration, onChange func(WipeEvent), logger *logger.Logger) *WipeWatcher {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &WipeWatcher{
		vault:    vault,
		uid:      uid,
		interval: interval,
		onChange: onChange,
		logger:   logger,
	}
}

func (w *WipeWatcher) Run(ctx context.Context) error {
	log := w.logger.Fields("uid", utils.ShortUID(w.uid))
	log.Info().Dur("interval", w.interval).Msg("wipe watcher started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var (
		known   bool
		current bool
	)

	for {
		manifest, err := w.vault.GetManifest(ctx, w.uid)
		switch {
		case ctx.Err() != nil:
			log.Info().Msg("wipe watcher stopped")
			return nil
		case errors.Is(err, adapter.ErrBadRequest):
			return err
		case err != nil:
			log.Warn().Err(err).Msg("manifest poll failed")
		case !known || manifest.RemoteWipeStatus != current:
			w.onChange(WipeEvent{
				RemoteWipeStatus: manifest.RemoteWipeStatus,
				Initial:          !known,
				ObservedAt:       time.Now().UTC(),
			})
			known, current = true, manifest.RemoteWipeStatus
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("wipe watcher stopped")
			return nil
		case <-ticker.C:
		}
	}
}
