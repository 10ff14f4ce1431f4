// internal/app/features/lookups/routes.go
package lookups

import (
	"github.com/seedscope/seedscope/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the taxonomy routes under /{table}. Reads are
// public; taxonomy writes are admin-only.
func (h *Handler) MountRoutes(r chi.Router, sm *auth.SessionManager) {
	r.Route("/{table}", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Show)

		r.Group(func(r chi.Router) {
			r.Use(sm.RequireRole("admin"))
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}
