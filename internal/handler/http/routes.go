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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind JWT authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.me)

		r.Route("/api/notes", func(r chi.Router) {
			r.Post("/", h.createNote)
			r.Get("/", h.listNotes)
			r.Get("/{id}", h.getNote)
			r.Patch("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})
	})

	return router
}
