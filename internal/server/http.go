package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-backup-vault/internal/logger"
)

type httpServer struct {
	name   string
	server *http.Server

	logger *logger.Logger
}

// newHTTPServer builds a listener for handler. Only header reads are bounded
// by a timeout; upload bodies may stream for as long as the client needs.
func newHTTPServer(name, address string, handler http.Handler, readHeaderTimeout time.Duration, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// RunServer blocks until the server stops. A stop caused by Shutdown is not
// an error.
func (h *httpServer) RunServer() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("%s server listen on %q: %w", h.name, h.server.Addr, err)
	}

	h.logger.Info().Str("server", h.name).Str("address", ln.Addr().String()).Msg("Launching HTTP server")

	if err = h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server serve: %w", h.name, err)
	}

	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Str("server", h.name).Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s server shutdown: %w", h.name, err)
	}

	return nil
}
