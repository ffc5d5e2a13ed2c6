// Package router sets up the HTTP routes and middleware chains for the
// dashboard API. Everything except /health and login requires a
// session.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/BlackZ36/Meibeichi/internal/handlers"
	"github.com/BlackZ36/Meibeichi/internal/middleware"
	"github.com/BlackZ36/Meibeichi/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check, no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIHeaders)

		r.Post("/login", api.Login)

		// Everything else needs a session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/logout", api.Logout)
			r.Get("/session", api.Session)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", api.ProductsList)
				r.Post("/", api.ProductCreate)
				r.Get("/{id}", api.ProductGet)
				r.Put("/{id}", api.ProductUpdate)
				r.Post("/{id}/pin", api.ProductPin)
				r.Delete("/{id}", api.ProductDelete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", api.CategoriesList)
				r.Post("/", api.CategoryCreate)
				r.Get("/{id}", api.CategoryGet)
				r.Put("/{id}", api.CategoryUpdate)
				r.Delete("/{id}", api.CategoryDelete)
			})

			r.Route("/chats", func(r chi.Router) {
				r.Get("/", api.ChatsList)
				r.Post("/", api.ChatCreate)
				r.Get("/{id}", api.ChatGet)
				r.Put("/{id}", api.ChatUpdate)
				r.Delete("/{id}", api.ChatDelete)
			})

			r.Post("/upload", api.Upload)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
