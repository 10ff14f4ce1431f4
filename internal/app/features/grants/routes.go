// internal/app/features/grants/routes.go
package grants

import (
	"github.com/seedscope/seedscope/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the grant routes. Reads are public; writes
// require a signed-in user.
func (h *Handler) MountRoutes(r chi.Router, sm *auth.SessionManager) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Show)

	r.Group(func(r chi.Router) {
		r.Use(sm.RequireSignedIn)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
