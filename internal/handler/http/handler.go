package http

import (
	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/metrics"
	"github.com/MKhiriev/go-backup-vault/internal/service"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	traceIDs *utils.UUIDGenerator

	// maxUploadBytes caps one upload body; zero disables the limit.
	maxUploadBytes int64

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil m gets a private registry so
// handlers never have to check for it.
func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.New()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		traceIDs:       utils.NewUUIDGenerator(),
		maxUploadBytes: cfg.MaxUploadBytes,
		logger:         logger,
	}
}
