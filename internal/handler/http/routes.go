package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// device-facing routes, raw bodies
	router.Post("/upload", h.upload)
	router.Get("/uploads/{uid}/{name}", h.download)

	// admin panel JSON API
	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		r.Post("/login", h.login)
		r.Get("/manifest", h.manifest)
		r.Post("/wipe", h.wipe)
		r.Get("/health", h.health)
		r.Get("/version", h.version)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
