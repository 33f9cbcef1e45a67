package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	// public cipher endpoints
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/api/cipher/encrypt", h.encrypt)
		r.Post("/api/cipher/decrypt", h.decrypt)
	})

	// artifact endpoints, called by the CTF platform with an admin token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.With(withGZip).Get("/api/artifacts", h.listArtifacts)
		r.With(withGZip).Post("/api/artifacts/{teamID}", h.generateArtifact)
		// zip archives are already compressed
		r.Get("/api/artifacts/{teamID}/archive", h.downloadArchive)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
