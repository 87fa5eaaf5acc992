package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/handler"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
)

const fallbackShutdownTimeout = 10 * time.Second

type server struct {
	httpServer    *httpServer
	metricsServer *httpServer

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = fallbackShutdownTimeout
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer("api", cfg.HTTPAddress, handlers.HTTP.Init(), cfg.ReadHeaderTimeout, logger)
	}
	if cfg.MetricsAddress != "" && handlers.Metrics != nil {
		servers.metricsServer = newHTTPServer("metrics", cfg.MetricsAddress, handlers.Metrics, cfg.ReadHeaderTimeout, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range s.servers() {
		g.Go(srv.RunServer)
	}

	// stop every listener once a signal arrives or any of them fails
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers() {
		errs = append(errs, srv.Shutdown(ctx))
	}

	return errors.Join(errs...)
}

func (s *server) servers() []*httpServer {
	servers := []*httpServer{s.httpServer}
	if s.metricsServer != nil {
		servers = append(servers, s.metricsServer)
	}

	return servers
}
