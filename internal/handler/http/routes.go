package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.getProfile)
		r.Delete("/api/users/me", h.deleteAccount)
		r.Patch("/api/users/name", h.updateName)
		r.Patch("/api/users/password", h.updatePassword)
		r.Put("/api/users/key", h.savePublicKey)
		r.Get("/api/users/search", h.searchUsers)

		r.Post("/api/files", h.uploadFile)
		r.Post("/api/files/shared", h.getSharedFile)
		r.Get("/api/files/sent", h.sentFiles)
		r.Get("/api/files/received", h.receivedFiles)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
