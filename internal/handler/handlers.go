package handler

import (
	"net/http"

	"github.com/MKhiriev/go-backup-vault/internal/config"
	myHTTP "github.com/MKhiriev/go-backup-vault/internal/handler/http"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/metrics"
	"github.com/MKhiriev/go-backup-vault/internal/service"
)

type Handlers struct {
	HTTP *myHTTP.Handler

	// Metrics serves the Prometheus registry; nil when no metrics address
	// is configured.
	Metrics http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	if m == nil {
		m = metrics.New()
	}

	handlers := &Handlers{
		HTTP: myHTTP.NewHandler(services, cfg, m, logger),
	}

	if cfg.MetricsAddress != "" {
		handlers.Metrics = m.Handler()
	}

	return handlers, nil
}
